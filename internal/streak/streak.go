// Package streak measures runs of consecutive calendar days.
package streak

import (
	"slices"

	"github.com/julianstephens/mindping/internal/models"
)

// Longest returns the length of the longest run of consecutive calendar days
// in days. Duplicates are ignored; order does not matter.
func Longest(days []models.Day) int {
	epochs := distinctEpochs(days)
	if len(epochs) == 0 {
		return 0
	}

	best, cur := 1, 1
	for i := 1; i < len(epochs); i++ {
		if epochs[i] == epochs[i-1]+1 {
			cur++
			best = max(best, cur)
		} else {
			cur = 1
		}
	}
	return best
}

// Current returns the length of the run that ends today, or yesterday when
// today has no entry yet. A run that ended before yesterday counts as 0.
func Current(days []models.Day, today models.Day) int {
	present := make(map[int64]struct{}, len(days))
	for _, d := range days {
		present[d.EpochDay()] = struct{}{}
	}

	end := today.EpochDay()
	if _, ok := present[end]; !ok {
		end--
		if _, ok := present[end]; !ok {
			return 0
		}
	}

	run := 0
	for {
		if _, ok := present[end-int64(run)]; !ok {
			return run
		}
		run++
	}
}

func distinctEpochs(days []models.Day) []int64 {
	epochs := make([]int64, 0, len(days))
	for _, d := range days {
		epochs = append(epochs, d.EpochDay())
	}
	slices.Sort(epochs)
	return slices.Compact(epochs)
}
