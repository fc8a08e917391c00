package analyzer

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/addrwatch/btctracker/internal/model"
)

// TimeWindow names a relative date range resolved against the current time
// when the filter runs.
type TimeWindow string

const (
	WindowAllTime    TimeWindow = "all"
	WindowLast7Days  TimeWindow = "7d"
	WindowLast30Days TimeWindow = "30d"
	WindowLast90Days TimeWindow = "90d"
	WindowYearToDate TimeWindow = "ytd"
	WindowLastYear   TimeWindow = "1y"
)

// FilterCriteria describes one filter pass over the cached records. The zero
// value matches everything and groups by month. All conditions are combined
// with AND.
type FilterCriteria struct {
	// Window picks a named range; ignored when Start/End are set. An
	// unrecognized non-empty window matches nothing.
	Window TimeWindow

	// Start and End bound the timestamp explicitly (inclusive). Either side
	// may be nil.
	Start *time.Time
	End   *time.Time

	// HashQuery keeps records whose hash contains the query as a
	// case-sensitive substring. Empty means no hash filter.
	HashQuery string

	// MinAmount and MaxAmount bound the net amount (inclusive). Nil means
	// unbounded on that side.
	MinAmount *btcutil.Amount
	MaxAmount *btcutil.Amount

	// GroupBy selects the series bucket. Invalid or empty falls back to
	// monthly buckets.
	GroupBy model.Grouping

	// MatchNone short-circuits the filter to empty results. Callers set it
	// when criteria could not be parsed: malformed input matches nothing
	// rather than failing.
	MatchNone bool
}

// resolveRange turns the criteria's date constraints into concrete bounds.
// ok is false when the window is unrecognized, in which case nothing should
// match.
func (c FilterCriteria) resolveRange(now time.Time) (start, end *time.Time, ok bool) {
	if c.Start != nil || c.End != nil {
		return c.Start, c.End, true
	}

	switch c.Window {
	case WindowAllTime, "":
		return nil, nil, true
	case WindowLast7Days:
		s := now.AddDate(0, 0, -7)
		return &s, nil, true
	case WindowLast30Days:
		s := now.AddDate(0, 0, -30)
		return &s, nil, true
	case WindowLast90Days:
		s := now.AddDate(0, 0, -90)
		return &s, nil, true
	case WindowLastYear:
		s := now.AddDate(0, 0, -365)
		return &s, nil, true
	case WindowYearToDate:
		s := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &s, nil, true
	}

	return nil, nil, false
}

func (c FilterCriteria) grouping() model.Grouping {
	if c.GroupBy.Valid() {
		return c.GroupBy
	}
	return model.GroupByMonth
}
