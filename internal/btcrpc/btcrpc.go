package btcrpc

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/addrwatch/btctracker/internal/btcrpc/rawaddr"
	"github.com/addrwatch/btctracker/internal/model"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

type BtcRpc struct {
	rawaddr rawaddr.IClient
	logger  *logger.Logger
}

func New(appConfig *config.AppConfig, logger *logger.Logger) IBtcRpc {
	return &BtcRpc{
		rawaddr: rawaddr.New(appConfig, logger),
		logger:  logger,
	}
}

// GetTransactionsByAddress fetches the address history and converts each
// entry into a TransactionRecord. The net amount of a transaction is the sum
// of its output values in satoshis.
func (b *BtcRpc) GetTransactionsByAddress(address string) ([]model.TransactionRecord, error) {
	payload, err := b.rawaddr.GetAddress(address)
	if err != nil {
		return nil, err
	}

	records := make([]model.TransactionRecord, 0, len(payload.Txs))
	for _, tx := range payload.Txs {
		var sats int64
		for _, out := range tx.Out {
			sats += out.Value
		}

		records = append(records, model.TransactionRecord{
			Hash:      tx.Hash,
			Timestamp: time.Unix(tx.Time, 0),
			Amount:    btcutil.Amount(sats),
		})
	}

	return records, nil
}
