// Package model defines domain models for live chain metrics ingestion.
package model

import "time"

// MetricsSample is one derived network snapshot, taken when a new block lands.
type MetricsSample struct {
	BlockNumber       uint64    `json:"blockNumber"`
	GasPrice          float64   `json:"gasPrice"`
	TPS               float64   `json:"tps"`
	BlockTime         float64   `json:"blockTime"`
	NetworkHealth     float64   `json:"networkHealth"`
	TotalTransactions int       `json:"totalTransactions"`
	BlockTransactions int       `json:"blockTransactions"`
	GasUtilization    float64   `json:"gasUtilization"`
	Timestamp         time.Time `json:"timestamp"`
}

// ProcessedMetrics summarizes the recent sample window.
type ProcessedMetrics struct {
	Current          *MetricsSample `json:"current"`
	AverageTPS       float64        `json:"averageTps"`
	AverageBlockTime float64        `json:"averageBlockTime"`
	AverageGasPrice  float64        `json:"averageGasPrice"`
	MinGasPrice      float64        `json:"minGasPrice"`
	MaxGasPrice      float64        `json:"maxGasPrice"`
	AverageHealth    float64        `json:"averageHealth"`
	Samples          int            `json:"samples"`
}

// Analytics is an aggregate over a persisted time range.
type Analytics struct {
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	Samples          uint64    `json:"samples"`
	AverageTPS       float64   `json:"averageTps"`
	MaxTPS           float64   `json:"maxTps"`
	AverageBlockTime float64   `json:"averageBlockTime"`
	AverageGasPrice  float64   `json:"averageGasPrice"`
	AverageHealth    float64   `json:"averageHealth"`
	Transactions     uint64    `json:"transactions"`
}
