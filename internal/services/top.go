package services

// clampTopLimit clamps a requested top-N limit to [1, TopListMax], falling
// back to TopListDefault when the caller did not supply one.
func clampTopLimit(limit int) int {
	if limit <= 0 {
		return TopListDefault
	}
	if limit > TopListMax {
		return TopListMax
	}
	return limit
}
