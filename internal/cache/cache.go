package cache

import (
	"sync"
	"time"

	"github.com/addrwatch/btctracker/internal/model"
)

// AddressCache is the process-wide slot holding the most recent fetch for
// the currently tracked address. It is overwritten wholesale on each
// successful fetch and never updated in place. The controller is the single
// writer; readers receive copies so no caller can alias the stored slice.
type AddressCache struct {
	mu sync.RWMutex

	address   string
	records   []model.TransactionRecord
	fetchedAt time.Time
}

func New() *AddressCache {
	return &AddressCache{}
}

// Set replaces the slot contents. The records slice is copied on the way in.
func (c *AddressCache) Set(address string, records []model.TransactionRecord, fetchedAt time.Time) {
	stored := make([]model.TransactionRecord, len(records))
	copy(stored, records)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = address
	c.records = stored
	c.fetchedAt = fetchedAt
}

// Snapshot returns the tracked address and a copy of its records. An empty
// address means nothing has been fetched yet.
func (c *AddressCache) Snapshot() (address string, records []model.TransactionRecord, fetchedAt time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records = make([]model.TransactionRecord, len(c.records))
	copy(records, c.records)
	return c.address, records, c.fetchedAt
}

// Address returns the currently tracked address without copying records.
func (c *AddressCache) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}
