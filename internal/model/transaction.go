package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// TransactionRecord is one entry of an address's history as shown in the
// table view. Records are built once per fetch and never mutated afterwards.
type TransactionRecord struct {
	Hash      string         `json:"hash"`
	Timestamp time.Time      `json:"timestamp"`
	Amount    btcutil.Amount `json:"amount_sat"`
}

// AmountBTC returns the net amount converted from satoshis to BTC.
func (r TransactionRecord) AmountBTC() float64 {
	return r.Amount.ToBTC()
}

// Grouping selects the calendar bucket used when aggregating records for the
// chart view.
type Grouping string

const (
	GroupByDay   Grouping = "day"
	GroupByWeek  Grouping = "week"
	GroupByMonth Grouping = "month"
	GroupByYear  Grouping = "year"
)

func (g Grouping) Valid() bool {
	switch g {
	case GroupByDay, GroupByWeek, GroupByMonth, GroupByYear:
		return true
	}
	return false
}

type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// SeriesPoint is one aggregation bucket: the number of matching records and
// their summed amount. Bucket is the start of the calendar interval.
type SeriesPoint struct {
	Bucket time.Time      `json:"bucket"`
	Count  int            `json:"count"`
	Total  btcutil.Amount `json:"total_sat"`
}
