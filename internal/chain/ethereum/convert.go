package ethereum

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse-backend/pkg/safe"
	"github.com/shopspring/decimal"
)

const (
	etherExp = -18
	gweiExp  = -9
)

// Selector is a 4-byte method id.
type Selector [4]byte

// DefaultSelectors maps well-known method ids to transaction types.
func DefaultSelectors() map[Selector]model.TxType {
	table := map[string]model.TxType{
		// uniswap v2 router
		"38ed1739": model.TxSwap,
		"7ff36ab5": model.TxSwap,
		"18cbafe5": model.TxSwap,
		"8803dbee": model.TxSwap,
		"fb3bdb41": model.TxSwap,
		// uniswap v3 routers
		"414bf389": model.TxSwap,
		"04e45aaf": model.TxSwap,
		"c04b8d59": model.TxSwap,
		"b858183f": model.TxSwap,
		// erc20/erc721 mint and burn
		"40c10f19": model.TxMint,
		"a0712d68": model.TxMint,
		"1249c58b": model.TxMint,
		"42966c68": model.TxBurn,
		"9dc29fac": model.TxBurn,
		"79cc6790": model.TxBurn,
		// optimism standard bridge deposits
		"b1a1a882": model.TxBridge,
		"9a2ac6d5": model.TxBridge,
	}

	out := make(map[Selector]model.TxType, len(table))
	for k, v := range table {
		raw, err := hex.DecodeString(k)
		if err != nil || len(raw) != 4 {
			continue
		}
		var sel Selector
		copy(sel[:], raw)
		out[sel] = v
	}
	return out
}

// Classify derives a transaction type: a missing recipient is a contract deployment, a
// non-empty payload is a contract call (refined by selector when known), anything else a transfer.
func Classify(to *common.Address, data []byte, selectors map[Selector]model.TxType) model.TxType {
	if to == nil {
		return model.TxContract
	}
	if len(data) == 0 {
		return model.TxTransfer
	}
	if len(data) >= 4 {
		var sel Selector
		copy(sel[:], data[:4])
		if t, ok := selectors[sel]; ok {
			return t
		}
	}
	return model.TxContract
}

// BuildBlock converts a go-ethereum block to a chain.Block.
func BuildBlock(b *types.Block) (*chain.Block, error) {
	ts, err := safe.Int64(b.Time())
	if err != nil {
		return nil, fmt.Errorf("block %d timestamp: %w", b.NumberU64(), err)
	}

	txs := b.Transactions()
	hashes := make([]string, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash().Hex())
	}

	return &chain.Block{
		Number:    b.NumberU64(),
		Hash:      b.Hash().Hex(),
		Timestamp: time.Unix(ts, 0).UTC(),
		GasUsed:   b.GasUsed(),
		GasLimit:  b.GasLimit(),
		TxHashes:  hashes,
	}, nil
}

// BuildRecord normalizes a transaction and its (possibly nil) receipt.
func BuildRecord(tx *types.Transaction, receipt *types.Receipt, from common.Address, block *chain.Block, selectors map[Selector]model.TxType) model.TransactionRecord {
	rec := model.TransactionRecord{
		Hash:      tx.Hash().Hex(),
		From:      from.Hex(),
		Value:     Ether(tx.Value()),
		GasPrice:  Gwei(tx.GasPrice()),
		GasLimit:  tx.Gas(),
		Status:    model.TxPending,
		Type:      Classify(tx.To(), tx.Data(), selectors),
		Timestamp: time.Now().UTC(),
	}
	if from == (common.Address{}) {
		rec.From = ""
	}
	if to := tx.To(); to != nil {
		s := to.Hex()
		rec.To = &s
	}
	if block != nil {
		rec.BlockNumber = block.Number
		rec.BlockHash = block.Hash
		rec.Timestamp = block.Timestamp
	}

	if receipt == nil {
		return rec
	}

	rec.GasUsed = receipt.GasUsed
	if receipt.EffectiveGasPrice != nil && receipt.EffectiveGasPrice.Sign() > 0 {
		rec.GasPrice = Gwei(receipt.EffectiveGasPrice)
	}
	if receipt.BlockNumber != nil && receipt.BlockNumber.IsUint64() {
		rec.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.BlockHash != (common.Hash{}) {
		rec.BlockHash = receipt.BlockHash.Hex()
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		rec.Status = model.TxSuccess
	} else {
		rec.Status = model.TxFailed
	}
	return rec
}

// Ether formats a wei amount in ether.
func Ether(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, etherExp).String()
}

// Gwei formats a wei amount in gwei.
func Gwei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, gweiExp).String()
}

// GweiFloat converts a wei amount to gwei as a float.
func GweiFloat(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	return decimal.NewFromBigInt(wei, gweiExp).InexactFloat64()
}

func normalizeHash(hash string) (common.Hash, bool) {
	h := strings.TrimPrefix(strings.ToLower(hash), "0x")
	if len(h) != 2*common.HashLength {
		return common.Hash{}, false
	}
	if _, err := hex.DecodeString(h); err != nil {
		return common.Hash{}, false
	}
	return common.HexToHash(h), true
}
