package calculator

import "fmt"

// hybridTPSPerShard is the baseline throughput of each shard under the
// rollups.
const hybridTPSPerShard = 100

// HybridResult holds the performance of rollups running on every shard of
// a sharded base layer.
type HybridResult struct {
	Solution              string   `json:"solution" yaml:"solution"`
	BaseLayer             string   `json:"base_layer" yaml:"base_layer"`
	Layer2                string   `json:"layer2" yaml:"layer2"`
	BaseShardedTPS        float64  `json:"base_sharded_tps" yaml:"base_sharded_tps"`
	Layer2Multiplier      float64  `json:"layer2_multiplier" yaml:"layer2_multiplier"`
	TotalHybridTPS        float64  `json:"total_hybrid_tps" yaml:"total_hybrid_tps"`
	ProcessingTimeSeconds float64  `json:"processing_time_seconds" yaml:"processing_time_seconds"`
	ScalabilityType       string   `json:"scalability_type" yaml:"scalability_type"`
	CostEfficiency        string   `json:"cost_efficiency" yaml:"cost_efficiency"`
	Security              string   `json:"security" yaml:"security"`
	UseCase               string   `json:"use_case" yaml:"use_case"`
	Examples              []string `json:"examples" yaml:"examples"`
}

// Hybrid models processing txVolume transactions with layer 2 rollups
// multiplying the throughput of every shard.
func Hybrid(txVolume float64, numShards int, layer2Multiplier float64) (HybridResult, error) {
	if err := volume(txVolume); err != nil {
		return HybridResult{}, err
	}
	if err := positive("num_shards", float64(numShards)); err != nil {
		return HybridResult{}, err
	}
	if err := positive("layer2_multiplier", layer2Multiplier); err != nil {
		return HybridResult{}, err
	}

	baseShardedTPS := float64(numShards) * hybridTPSPerShard
	hybridTPS := baseShardedTPS * layer2Multiplier
	if err := finite("total_hybrid_tps", hybridTPS); err != nil {
		return HybridResult{}, err
	}

	processingTime := txVolume / hybridTPS
	if err := finite("processing_time_seconds", processingTime); err != nil {
		return HybridResult{}, err
	}

	res := HybridResult{
		Solution:              "Hybrid Model (Layer 2 + Sharding)",
		BaseLayer:             fmt.Sprintf("Sharded (%d shards)", numShards),
		Layer2:                "Rollups on each shard",
		BaseShardedTPS:        baseShardedTPS,
		Layer2Multiplier:      layer2Multiplier,
		TotalHybridTPS:        hybridTPS,
		ProcessingTimeSeconds: round2(processingTime),
		ScalabilityType:       "Exponential (multiplicative)",
		CostEfficiency:        "Optimal (combined benefits)",
		Security:              "Layered (L1 sharding + L2 proofs)",
		UseCase:               "Web3 global infrastructure",
		Examples:              []string{"Solana + Layer 2", "Shardeum", "Future Ethereum"},
	}

	return res, nil
}
