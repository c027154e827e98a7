package model

import "time"

// TxStatus describes the execution outcome of a transaction.
type TxStatus string

var (
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
	TxPending TxStatus = "pending"
)

// TxType is a coarse classification of what a transaction does.
type TxType string

var (
	TxTransfer TxType = "transfer"
	TxContract TxType = "contract"
	TxSwap     TxType = "swap"
	TxMint     TxType = "mint"
	TxBurn     TxType = "burn"
	TxBridge   TxType = "bridge"
)

// TransactionRecord is a normalized transaction with its receipt outcome.
// Value is in ether and GasPrice in gwei, both as decimal strings.
type TransactionRecord struct {
	Hash        string    `json:"hash"`
	From        string    `json:"from"`
	To          *string   `json:"to"`
	Value       string    `json:"value"`
	GasPrice    string    `json:"gasPrice"`
	GasUsed     uint64    `json:"gasUsed"`
	GasLimit    uint64    `json:"gasLimit"`
	BlockNumber uint64    `json:"blockNumber"`
	BlockHash   string    `json:"blockHash"`
	Timestamp   time.Time `json:"timestamp"`
	Status      TxStatus  `json:"status"`
	Type        TxType    `json:"type"`
}
