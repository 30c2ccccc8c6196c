package testcases

var insideCases = []TestCase{
	{
		Name:    "horizontal",
		Width:   10,
		Height:  10,
		From:    pt(0, 0),
		To:      pt(3, 0),
		Visible: true,
		Want:    px(0, 0, 1, 0, 2, 0, 3, 0),
	},
	{
		Name:    "diagonal",
		Width:   10,
		Height:  10,
		From:    pt(0, 0),
		To:      pt(2, 2),
		Visible: true,
		Want:    px(0, 0, 1, 1, 2, 2),
	},
	{
		Name:    "vertical_up",
		Width:   10,
		Height:  10,
		From:    pt(4, 7),
		To:      pt(4, 4),
		Visible: true,
		Want:    vline(4, 7, 4),
	},
	{
		Name:    "shallow",
		Width:   10,
		Height:  10,
		From:    pt(0, 0),
		To:      pt(5, 2),
		Visible: true,
		Want:    px(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		// The midpoint of this line lies exactly between (1, 0) and (1, 1).
		// Walking backwards must pick the same pixel as walking forwards.
		Name:    "tie_reversed",
		Width:   10,
		Height:  10,
		From:    pt(2, 1),
		To:      pt(0, 0),
		Visible: true,
		Want:    px(2, 1, 1, 0, 0, 0),
	},
	{
		Name:    "steep",
		Width:   10,
		Height:  10,
		From:    pt(1, 1),
		To:      pt(3, 6),
		Visible: true,
		Want:    px(1, 1, 1, 2, 2, 3, 2, 4, 3, 5, 3, 6),
	},
}
