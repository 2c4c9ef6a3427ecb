// Package rating aggregates review scores into the average stored on a place.
package rating

// Average returns the arithmetic mean of scores. ok is false when there is
// nothing to average, in which case callers keep whatever value they had.
func Average(scores []int) (avg float64, ok bool) {
	if len(scores) == 0 {
		return 0, false
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores)), true
}
