// Package analyzer holds the pure filter/aggregation core: given the cached
// records of one address and a set of filter criteria, it produces the rows
// for the table view and the bucketed series for the chart view. It performs
// no I/O and keeps no state; identical inputs always yield identical output.
package analyzer

import (
	"strings"
	"time"

	"github.com/addrwatch/btctracker/internal/model"
)

// Series is the chart-view output: chronological buckets plus a hint which
// chart kind renders them (bar for yearly buckets, line otherwise).
type Series struct {
	Chart  model.ChartKind     `json:"chart"`
	Points []model.SeriesPoint `json:"points"`
}

// Apply filters records through criteria and buckets the survivors. The
// filtered slice is a subsequence of records in their original order. Empty
// input or criteria that match nothing yield empty output, never an error.
func Apply(records []model.TransactionRecord, criteria FilterCriteria, now time.Time) ([]model.TransactionRecord, Series) {
	grouping := criteria.grouping()

	filtered := filter(records, criteria, now)
	return filtered, aggregate(filtered, grouping)
}

func filter(records []model.TransactionRecord, criteria FilterCriteria, now time.Time) []model.TransactionRecord {
	filtered := []model.TransactionRecord{}

	if criteria.MatchNone {
		return filtered
	}

	start, end, ok := criteria.resolveRange(now)
	if !ok {
		return filtered
	}

	for _, r := range records {
		if start != nil && r.Timestamp.Before(*start) {
			continue
		}
		if end != nil && r.Timestamp.After(*end) {
			continue
		}
		if criteria.HashQuery != "" && !strings.Contains(r.Hash, criteria.HashQuery) {
			continue
		}
		if criteria.MinAmount != nil && r.Amount < *criteria.MinAmount {
			continue
		}
		if criteria.MaxAmount != nil && r.Amount > *criteria.MaxAmount {
			continue
		}
		filtered = append(filtered, r)
	}

	return filtered
}

// aggregate partitions records into calendar buckets and sums each bucket.
// Buckets with no records are omitted: the series is sparse, matching the
// chart's source behavior of compressing empty stretches.
func aggregate(records []model.TransactionRecord, grouping model.Grouping) Series {
	series := Series{
		Chart:  chartKindFor(grouping),
		Points: []model.SeriesPoint{},
	}

	byBucket := map[time.Time]*model.SeriesPoint{}
	for _, r := range records {
		key := bucketKey(r.Timestamp, grouping)
		point, exists := byBucket[key]
		if !exists {
			point = &model.SeriesPoint{Bucket: key}
			byBucket[key] = point
		}
		point.Count++
		point.Total += r.Amount
	}

	for _, point := range byBucket {
		series.Points = append(series.Points, *point)
	}
	sortPoints(series.Points)

	return series
}

func chartKindFor(grouping model.Grouping) model.ChartKind {
	if grouping == model.GroupByYear {
		return model.ChartBar
	}
	return model.ChartLine
}
