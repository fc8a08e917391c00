package controller

import (
	"time"

	"github.com/addrwatch/btctracker/internal/analyzer"
	"github.com/addrwatch/btctracker/internal/model"
)

// FetchResult summarizes one completed fetch.
type FetchResult struct {
	Address   string
	TxCount   int
	FetchedAt time.Time
}

// TransactionsResult is the table and chart output derived from the cached
// slot and one set of criteria.
type TransactionsResult struct {
	Address      string
	FetchedAt    time.Time
	Transactions []model.TransactionRecord
	Series       analyzer.Series
}

type IController interface {
	// Fetch retrieves the address history and overwrites the cache on
	// success. Returns ErrFetchInFlight while another fetch is running.
	Fetch(address string) (*FetchResult, error)

	// Transactions evaluates criteria against the cached slot. Never fails:
	// an empty cache or criteria matching nothing yield empty results.
	Transactions(criteria analyzer.FilterCriteria) *TransactionsResult

	// Refresh re-fetches the currently tracked address; no-op when nothing
	// has been fetched yet.
	Refresh()
}
