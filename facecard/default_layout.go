package facecard

import "cardtable/card"

// Built-in pip table. Numeric ranks carry one placement per pip;
// A/J/Q/K carry the single centered placement the letter-in-circle
// treatment draws at.
var defaultLayout = PipLayout{
	card.RankA: {{X: 40, Y: 60, Scale: 2}},
	card.Rank2: {{X: 40, Y: 30, Scale: 1.5}, {X: 40, Y: 90, Scale: 1.5}},
	card.Rank3: {{X: 40, Y: 30, Scale: 1.5}, {X: 40, Y: 60, Scale: 1.5}, {X: 40, Y: 90, Scale: 1.5}},
	card.Rank4: {
		{X: 25, Y: 30, Scale: 1.2}, {X: 55, Y: 30, Scale: 1.2},
		{X: 25, Y: 90, Scale: 1.2}, {X: 55, Y: 90, Scale: 1.2},
	},
	card.Rank5: {
		{X: 25, Y: 30, Scale: 1.2}, {X: 55, Y: 30, Scale: 1.2},
		{X: 40, Y: 60, Scale: 1.2},
		{X: 25, Y: 90, Scale: 1.2}, {X: 55, Y: 90, Scale: 1.2},
	},
	card.Rank6: {
		{X: 25, Y: 30, Scale: 1.2}, {X: 55, Y: 30, Scale: 1.2},
		{X: 25, Y: 60, Scale: 1.2}, {X: 55, Y: 60, Scale: 1.2},
		{X: 25, Y: 90, Scale: 1.2}, {X: 55, Y: 90, Scale: 1.2},
	},
	card.Rank7: {
		{X: 25, Y: 30, Scale: 1.2}, {X: 55, Y: 30, Scale: 1.2},
		{X: 40, Y: 45, Scale: 1.2},
		{X: 25, Y: 60, Scale: 1.2}, {X: 55, Y: 60, Scale: 1.2},
		{X: 25, Y: 90, Scale: 1.2}, {X: 55, Y: 90, Scale: 1.2},
	},
	card.Rank8: {
		{X: 25, Y: 30, Scale: 1.2}, {X: 55, Y: 30, Scale: 1.2},
		{X: 25, Y: 50, Scale: 1.2}, {X: 55, Y: 50, Scale: 1.2},
		{X: 25, Y: 70, Scale: 1.2}, {X: 55, Y: 70, Scale: 1.2},
		{X: 25, Y: 90, Scale: 1.2}, {X: 55, Y: 90, Scale: 1.2},
	},
	card.Rank9: {
		{X: 25, Y: 30, Scale: 1.1}, {X: 55, Y: 30, Scale: 1.1},
		{X: 25, Y: 50, Scale: 1.1}, {X: 55, Y: 50, Scale: 1.1},
		{X: 40, Y: 60, Scale: 1.1},
		{X: 25, Y: 70, Scale: 1.1}, {X: 55, Y: 70, Scale: 1.1},
		{X: 25, Y: 90, Scale: 1.1}, {X: 55, Y: 90, Scale: 1.1},
	},
	card.Rank10: {
		{X: 25, Y: 25, Scale: 1}, {X: 55, Y: 25, Scale: 1},
		{X: 40, Y: 35, Scale: 1},
		{X: 25, Y: 45, Scale: 1}, {X: 55, Y: 45, Scale: 1},
		{X: 40, Y: 60, Scale: 1},
		{X: 25, Y: 75, Scale: 1}, {X: 55, Y: 75, Scale: 1},
		{X: 25, Y: 95, Scale: 1}, {X: 55, Y: 95, Scale: 1},
	},
	card.RankJ: {{X: 40, Y: 60, Scale: 2}},
	card.RankQ: {{X: 40, Y: 60, Scale: 2}},
	card.RankK: {{X: 40, Y: 60, Scale: 2}},
}

// DefaultLayout returns a mutable copy of the built-in pip table.
func DefaultLayout() PipLayout {
	return defaultLayout.Clone()
}
