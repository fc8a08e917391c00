package rawaddr

// Response mirrors the subset of the rawaddr payload the tracker reads. The
// service returns more fields per transaction; anything not listed here is
// ignored during decoding.
type Response struct {
	Address string `json:"address"`
	NTx     int64  `json:"n_tx"`
	Txs     []Tx   `json:"txs"`
}

type Tx struct {
	Hash string  `json:"hash"`
	Time int64   `json:"time"`
	Out  []TxOut `json:"out"`
}

// TxOut carries the output value in satoshis. The net amount of a
// transaction is derived by summing its outputs.
type TxOut struct {
	Value int64 `json:"value"`
}
