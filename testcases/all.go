package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"inside":     insideCases,
	"clipped":    clippedCases,
	"outside":    outsideCases,
	"degenerate": degenerateCases,
	"boundary":   boundaryCases,
}
