package calcgrp

import "github.com/ardanlabs/scalability/business/core/calculator"

// Defaults holds the parameter values used for any field a request leaves
// out.
type Defaults struct {
	TxVolume         float64
	BatchSize        float64
	GasPrice         float64
	ShardingShards   int
	TPSPerShard      float64
	HybridShards     int
	Layer2Multiplier float64
	TrilemmaScore    float64
}

// StandardDefaults returns the reference parameters of each model.
func StandardDefaults() Defaults {
	return Defaults{
		TxVolume:         calculator.DefaultTxVolume,
		BatchSize:        calculator.DefaultBatchSize,
		GasPrice:         calculator.DefaultGasPrice,
		ShardingShards:   calculator.DefaultShardingShards,
		TPSPerShard:      calculator.DefaultTPSPerShard,
		HybridShards:     calculator.DefaultHybridShards,
		Layer2Multiplier: calculator.DefaultLayer2Multiplier,
		TrilemmaScore:    calculator.DefaultTrilemmaScore,
	}
}

// =============================================================================

type layer2Req struct {
	TxVolume  *float64 `json:"tx_volume" validate:"omitempty,gte=0"`
	BatchSize *float64 `json:"batch_size" validate:"omitempty,gt=0"`
	GasPrice  *float64 `json:"gas_price" validate:"omitempty,gt=0"`
}

type shardingReq struct {
	TxVolume    *float64 `json:"tx_volume" validate:"omitempty,gte=0"`
	NumShards   *int     `json:"num_shards" validate:"omitempty,gt=0"`
	TPSPerShard *float64 `json:"tps_per_shard" validate:"omitempty,gt=0"`
}

type hybridReq struct {
	TxVolume         *float64 `json:"tx_volume" validate:"omitempty,gte=0"`
	NumShards        *int     `json:"num_shards" validate:"omitempty,gt=0"`
	Layer2Multiplier *float64 `json:"layer2_multiplier" validate:"omitempty,gt=0"`
}

type compareReq struct {
	TxVolume *float64 `json:"tx_volume" validate:"omitempty,gte=0"`
}

type trilemmaReq struct {
	Scalability      *float64 `json:"scalability" validate:"omitempty,gte=0,lte=100"`
	Security         *float64 `json:"security" validate:"omitempty,gte=0,lte=100"`
	Decentralization *float64 `json:"decentralization" validate:"omitempty,gte=0,lte=100"`
}

// valueOr returns the value behind p or def when the field was left out.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
