package testcases

var clippedCases = []TestCase{
	{
		// The line y = x enters the viewport through the origin.
		Name:    "through_origin",
		Width:   10,
		Height:  10,
		From:    pt(-5, -5),
		To:      pt(5, 5),
		Visible: true,
		Want:    px(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5),
	},
	{
		// The right edge clips to the last column, x = 9.
		Name:    "right_edge",
		Width:   10,
		Height:  10,
		From:    pt(5, 5),
		To:      pt(20, 5),
		Visible: true,
		Want:    hline(5, 9, 5),
	},
	{
		Name:    "bottom_edge",
		Width:   10,
		Height:  10,
		From:    pt(2, 3),
		To:      pt(2, 15),
		Visible: true,
		Want:    vline(2, 3, 9),
	},
	{
		Name:    "both_ends",
		Width:   10,
		Height:  10,
		From:    pt(-10, 5),
		To:      pt(20, 5),
		Visible: true,
		Want:    hline(0, 9, 5),
	},
	{
		// The first endpoint is clipped against the left edge, then the
		// second one against the top edge.
		Name:    "two_edges",
		Width:   10,
		Height:  10,
		From:    pt(-2, 4),
		To:      pt(4, -2),
		Visible: true,
		Want:    px(0, 2, 1, 1, 2, 0),
	},
	{
		// The intersection with x = 9 is at y = 3.15, rounded to 3.
		Name:    "rounded_intersection",
		Width:   10,
		Height:  10,
		From:    pt(0, 0),
		To:      pt(20, 7),
		Visible: true,
		Want:    px(0, 0, 1, 0, 2, 1, 3, 1, 4, 1, 5, 2, 6, 2, 7, 2, 8, 3, 9, 3),
	},
}
