package btcrpc

import "github.com/addrwatch/btctracker/internal/model"

type IBtcRpc interface {
	GetTransactionsByAddress(address string) ([]model.TransactionRecord, error)
}
