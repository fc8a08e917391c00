package controller

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/addrwatch/btctracker/internal/analyzer"
	"github.com/addrwatch/btctracker/internal/btcrpc"
	"github.com/addrwatch/btctracker/internal/cache"
	"github.com/addrwatch/btctracker/internal/monitoring"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

// ErrFetchInFlight is returned when a fetch is requested while a previous
// one has not completed. Requests are rejected rather than queued so the
// cache only ever sees one writer at a time.
var ErrFetchInFlight = errors.New("a fetch for this tracker is already in progress")

type Controller struct {
	mu       sync.Mutex
	inFlight bool

	cache   *cache.AddressCache
	btcRpc  btcrpc.IBtcRpc
	logger  *logger.Logger
	metrics *monitoring.FetchMetrics
}

func New(addressCache *cache.AddressCache, btcRpc btcrpc.IBtcRpc, logger *logger.Logger, metrics *monitoring.FetchMetrics) IController {
	return &Controller{
		cache:   addressCache,
		btcRpc:  btcRpc,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Controller) Fetch(address string) (*FetchResult, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrFetchInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	start := time.Now()
	records, err := c.btcRpc.GetTransactionsByAddress(address)
	if err != nil {
		// the previous cache contents stay untouched: stale data beats no data
		c.recordFetch("error", start)
		c.logger.Error("[Fetch][GetTransactionsByAddress]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, err
	}

	fetchedAt := time.Now()
	c.cache.Set(address, records, fetchedAt)
	c.recordFetch("success", start)
	if c.metrics != nil {
		c.metrics.SetCachedRecords(len(records))
	}

	c.logger.Info(fmt.Sprintf("[Fetch] cached %d transactions", len(records)), map[string]string{
		"address": address,
	})

	return &FetchResult{
		Address:   address,
		TxCount:   len(records),
		FetchedAt: fetchedAt,
	}, nil
}

func (c *Controller) Transactions(criteria analyzer.FilterCriteria) *TransactionsResult {
	address, records, fetchedAt := c.cache.Snapshot()
	filtered, series := analyzer.Apply(records, criteria, time.Now())

	return &TransactionsResult{
		Address:      address,
		FetchedAt:    fetchedAt,
		Transactions: filtered,
		Series:       series,
	}
}

func (c *Controller) Refresh() {
	address := c.cache.Address()
	if address == "" {
		return
	}

	if _, err := c.Fetch(address); err != nil {
		if errors.Is(err, ErrFetchInFlight) {
			return
		}
		c.logger.Error("[Refresh][Fetch]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
	}
}

func (c *Controller) recordFetch(status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordFetch(status, time.Since(start).Seconds())
}
