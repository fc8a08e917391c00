package btcrpc

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrwatch/btctracker/internal/btcrpc/rawaddr"
	"github.com/addrwatch/btctracker/internal/types/environments"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

type stubRawAddr struct {
	payload *rawaddr.Response
	err     error
}

func (s *stubRawAddr) GetAddress(address string) (*rawaddr.Response, error) {
	return s.payload, s.err
}

func TestGetTransactionsByAddress_ConvertsRecords(t *testing.T) {
	rpc := &BtcRpc{
		rawaddr: &stubRawAddr{
			payload: &rawaddr.Response{
				NTx: 2,
				Txs: []rawaddr.Tx{
					{Hash: "aa11", Time: 1704067200, Out: []rawaddr.TxOut{{Value: 50_000_000}, {Value: 25_000_000}}},
					{Hash: "bb22", Time: 1717200000, Out: []rawaddr.TxOut{{Value: 120_000_000}}},
				},
			},
		},
		logger: logger.New(environments.Test),
	}

	records, err := rpc.GetTransactionsByAddress("1BoatSLRHtKNngkdXEeobR76b53LETtpyT")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "aa11", records[0].Hash)
	assert.Equal(t, time.Unix(1704067200, 0), records[0].Timestamp)
	assert.Equal(t, btcutil.Amount(75_000_000), records[0].Amount)
	assert.Equal(t, 0.75, records[0].AmountBTC())
	assert.Equal(t, btcutil.Amount(120_000_000), records[1].Amount)
}

func TestGetTransactionsByAddress_NoOutputs(t *testing.T) {
	rpc := &BtcRpc{
		rawaddr: &stubRawAddr{
			payload: &rawaddr.Response{Txs: []rawaddr.Tx{{Hash: "cc33", Time: 1704067200}}},
		},
		logger: logger.New(environments.Test),
	}

	records, err := rpc.GetTransactionsByAddress("addr")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, btcutil.Amount(0), records[0].Amount)
}

func TestGetTransactionsByAddress_PassesErrorThrough(t *testing.T) {
	rpc := &BtcRpc{
		rawaddr: &stubRawAddr{err: rawaddr.ErrAddressNotFound},
		logger:  logger.New(environments.Test),
	}

	records, err := rpc.GetTransactionsByAddress("unknown")

	assert.Nil(t, records)
	assert.ErrorIs(t, err, rawaddr.ErrAddressNotFound)
}
