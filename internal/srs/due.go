package srs

import (
	"sort"
	"time"
)

// DueItems returns the items whose next review is at or before now, ordered
// most-overdue first. Ties are broken by lowest easiness factor so that the
// most difficult words come up first.
func DueItems(items []ReviewItem, now time.Time) []ReviewItem {
	var due []ReviewItem
	for _, item := range items {
		if !item.NextReview.After(now) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].NextReview.Equal(due[j].NextReview) {
			return due[i].NextReview.Before(due[j].NextReview)
		}
		return due[i].EasinessFactor < due[j].EasinessFactor
	})
	return due
}
