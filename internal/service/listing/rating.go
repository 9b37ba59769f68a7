package listing

import "math"

// AverageRating returns sum(ratings)/count, or 0 when there are no ratings.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// RoundRating rounds to one decimal place for display.
func RoundRating(value float64) float64 {
	return math.Round(value*10) / 10
}

// DisplayNumbers numbers entries for display, skipping sponsored ones.
// Sponsored entries get 0; the rest count up from offset+1.
func DisplayNumbers(sponsored []bool, offset int) []int {
	numbers := make([]int, len(sponsored))
	next := offset + 1
	for i, isSponsored := range sponsored {
		if isSponsored {
			continue
		}
		numbers[i] = next
		next++
	}
	return numbers
}
