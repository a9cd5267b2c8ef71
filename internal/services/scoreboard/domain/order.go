package domain

import "cmp"

// CompareByScore orders a before b when a has the higher total score, or the
// same total and a later start. It never reports two distinct matches from
// one scoreboard as equal.
func CompareByScore(a, b Match) int {
	if c := cmp.Compare(b.TotalScore(), a.TotalScore()); c != 0 {
		return c
	}
	return cmp.Compare(b.Sequence, a.Sequence)
}
