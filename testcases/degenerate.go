package testcases

var degenerateCases = []TestCase{
	{
		Name:    "point_inside",
		Width:   10,
		Height:  10,
		From:    pt(3, 3),
		To:      pt(3, 3),
		Visible: true,
		Want:    px(3, 3),
	},
	{
		Name:   "point_outside",
		Width:  10,
		Height: 10,
		From:   pt(-1, -1),
		To:     pt(-1, -1),
	},
	{
		Name:    "single_pixel_viewport",
		Width:   1,
		Height:  1,
		From:    pt(-3, 0),
		To:      pt(3, 0),
		Visible: true,
		Want:    px(0, 0),
	},
}

var boundaryCases = []TestCase{
	{
		Name:    "left_edge",
		Width:   10,
		Height:  10,
		From:    pt(0, 0),
		To:      pt(0, 9),
		Visible: true,
		Want:    vline(0, 0, 9),
	},
	{
		Name:    "last_row",
		Width:   10,
		Height:  10,
		From:    pt(9, 9),
		To:      pt(0, 9),
		Visible: true,
		Want:    hline(9, 0, 9),
	},
	{
		// x = 9.6 is inside the viewport but rounds to 10, so every
		// pixel of the line is dropped.
		Name:    "rounded_out",
		Width:   10,
		Height:  10,
		From:    pt(9.6, 2),
		To:      pt(9.6, 4),
		Visible: true,
		Want:    nil,
	},
	{
		// Halves round upwards: 2.5 becomes 3 and -0.5 becomes 0.
		Name:    "half_round",
		Width:   10,
		Height:  10,
		From:    pt(-0.5, 2.5),
		To:      pt(3.5, 2.5),
		Visible: true,
		Want:    hline(0, 4, 3),
	},
}
