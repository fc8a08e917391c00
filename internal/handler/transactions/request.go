package transactions

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/addrwatch/btctracker/internal/analyzer"
	"github.com/addrwatch/btctracker/internal/model"
)

// ListRequest carries the filter controls as query parameters. Amounts are
// in BTC, dates are RFC 3339 or YYYY-MM-DD.
type ListRequest struct {
	Window    string   `form:"window"`
	Start     string   `form:"start"`
	End       string   `form:"end"`
	Hash      string   `form:"hash"`
	MinAmount *float64 `form:"min_amount"`
	MaxAmount *float64 `form:"max_amount"`
	GroupBy   string   `form:"group_by"`
}

// toCriteria converts the request into filter criteria. Values that cannot
// be parsed mark the criteria as matching nothing instead of failing the
// request.
func (req ListRequest) toCriteria() analyzer.FilterCriteria {
	criteria := analyzer.FilterCriteria{
		Window:    analyzer.TimeWindow(req.Window),
		HashQuery: req.Hash,
		GroupBy:   model.Grouping(req.GroupBy),
	}

	if req.Start != "" {
		start, err := parseDate(req.Start)
		if err != nil {
			criteria.MatchNone = true
			return criteria
		}
		criteria.Start = &start
	}
	if req.End != "" {
		end, err := parseDate(req.End)
		if err != nil {
			criteria.MatchNone = true
			return criteria
		}
		criteria.End = &end
	}

	if req.MinAmount != nil {
		amount, err := btcutil.NewAmount(*req.MinAmount)
		if err != nil {
			criteria.MatchNone = true
			return criteria
		}
		criteria.MinAmount = &amount
	}
	if req.MaxAmount != nil {
		amount, err := btcutil.NewAmount(*req.MaxAmount)
		if err != nil {
			criteria.MatchNone = true
			return criteria
		}
		criteria.MaxAmount = &amount
	}

	return criteria
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

type TransactionView struct {
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	AmountBTC float64   `json:"amount_btc"`
}

type SeriesPointView struct {
	Bucket   time.Time `json:"bucket"`
	Count    int       `json:"count"`
	TotalBTC float64   `json:"total_btc"`
}

type SeriesView struct {
	Chart  string            `json:"chart"`
	Points []SeriesPointView `json:"points"`
}

type ListResponse struct {
	Address      string            `json:"address"`
	FetchedAt    *time.Time        `json:"fetched_at,omitempty"`
	Total        int               `json:"total"`
	Transactions []TransactionView `json:"transactions"`
	Series       SeriesView        `json:"series"`
}

type FetchResponse struct {
	Address   string    `json:"address"`
	TxCount   int       `json:"tx_count"`
	FetchedAt time.Time `json:"fetched_at"`
}
