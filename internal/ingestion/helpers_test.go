package ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/chainpulse-backend/internal/aggregator"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"go.uber.org/zap"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type chainStub struct {
	txPerBlock int
	failTx     map[string]bool
	gasUsed    uint64
	gasLimit   uint64
}

func (c chainStub) block(height uint64) *chain.Block {
	hashes := make([]string, c.txPerBlock)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("0x%d-%d", height, i)
	}
	return &chain.Block{
		Number:    height,
		Hash:      fmt.Sprintf("0xblock%d", height),
		Timestamp: baseTime.Add(time.Duration(height) * time.Second),
		GasUsed:   c.gasUsed,
		GasLimit:  c.gasLimit,
		TxHashes:  hashes,
	}
}

func (c chainStub) expect(up *MockUpstream) {
	up.EXPECT().FetchBlock(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, height uint64) (*chain.Block, error) {
			return c.block(height), nil
		}).AnyTimes()
	up.EXPECT().GasPrice(gomock.Any()).Return(20.0, nil).AnyTimes()
	up.EXPECT().FetchTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hash string, b *chain.Block) (model.TransactionRecord, error) {
			if c.failTx[hash] {
				return model.TransactionRecord{}, errors.New("receipt unavailable")
			}
			return model.TransactionRecord{
				Hash:        hash,
				BlockNumber: b.Number,
				Timestamp:   b.Timestamp,
				Status:      model.TxSuccess,
				Type:        model.TxTransfer,
			}, nil
		}).AnyTimes()
}

func allowMetrics(m *MockMetrics) {
	m.EXPECT().ObserveBlock(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveTransaction(gomock.Any()).AnyTimes()
	m.EXPECT().ObserveDiscard(gomock.Any()).AnyTimes()
	m.EXPECT().ObserveReconnect(gomock.Any()).AnyTimes()
	m.EXPECT().SetHead(gomock.Any()).AnyTimes()
	m.EXPECT().SetConnected(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().SetBuffers(gomock.Any(), gomock.Any()).AnyTimes()
}

// newConnectedEngine returns an engine that already holds up as its primary upstream.
func newConnectedEngine(t *testing.T, ctrl *gomock.Controller, cfg Config, up chain.Upstream, metrics Metrics, agg *aggregator.Aggregator, observers ...SampleObserver) *Engine {
	t.Helper()

	if metrics == nil {
		m := NewMockMetrics(ctrl)
		allowMetrics(m)
		metrics = m
	}
	e, err := New(cfg, NewMockConnector(ctrl), agg, metrics, nil, zap.NewNop(), observers...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	e.upstream = up
	e.role = rolePrimary
	e.connected = true
	return e
}
