package testcases

var outsideCases = []TestCase{
	{
		Name:   "right_of",
		Width:  10,
		Height: 10,
		From:   pt(20, 5),
		To:     pt(30, 5),
	},
	{
		Name:   "above",
		Width:  10,
		Height: 10,
		From:   pt(1, -3),
		To:     pt(8, -1),
	},
	{
		Name:   "below_left",
		Width:  10,
		Height: 10,
		From:   pt(-4, 12),
		To:     pt(-1, 30),
	},
	{
		// The line x + y = -2 passes the top-left corner without
		// touching the viewport.  The outcodes only share a bit after
		// the first refinement step.
		Name:   "corner_miss",
		Width:  10,
		Height: 10,
		From:   pt(-5, 3),
		To:     pt(3, -5),
	},
}
