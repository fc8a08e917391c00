package analyzer

import (
	"sort"
	"time"

	"github.com/addrwatch/btctracker/internal/model"
)

// bucketKey truncates a timestamp to the start of its calendar bucket.
// Weeks start on Monday.
func bucketKey(t time.Time, grouping model.Grouping) time.Time {
	year, month, day := t.Date()

	switch grouping {
	case model.GroupByDay:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	case model.GroupByWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day-offset, 0, 0, 0, 0, t.Location())
	case model.GroupByYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	}
}

func sortPoints(points []model.SeriesPoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket.Before(points[j].Bucket)
	})
}
