package calculator

import (
	"fmt"
	"math"
)

// Sharding model constants. The improvement and reduction percentages are the
// published findings and are reported as is, whatever the shard layout.
const (
	crossShardRatio              = 0.20
	crossShardLatencyMultiplier  = 1.5
	throughputImprovementPercent = 19.5
	latencyReductionPercent      = 25
)

// BaseComparison relates sharded throughput to the base layer.
type BaseComparison struct {
	BaseTPS           float64 `json:"base_tps" yaml:"base_tps"`
	ShardedTPS        float64 `json:"sharded_tps" yaml:"sharded_tps"`
	ImprovementFactor float64 `json:"improvement_factor" yaml:"improvement_factor"`
}

// ShardingResult holds the performance of a sharded chain.
type ShardingResult struct {
	Solution                     string         `json:"solution" yaml:"solution"`
	NumShards                    int            `json:"num_shards" yaml:"num_shards"`
	TPSPerShard                  float64        `json:"tps_per_shard" yaml:"tps_per_shard"`
	TotalTPS                     float64        `json:"total_tps" yaml:"total_tps"`
	ProcessingTimeSeconds        float64        `json:"processing_time_seconds" yaml:"processing_time_seconds"`
	IntraShardTxs                float64        `json:"intra_shard_txs" yaml:"intra_shard_txs"`
	CrossShardTxs                float64        `json:"cross_shard_txs" yaml:"cross_shard_txs"`
	CrossShardPercentage         float64        `json:"cross_shard_percentage" yaml:"cross_shard_percentage"`
	AvgLatencyMultiplier         float64        `json:"avg_latency_multiplier" yaml:"avg_latency_multiplier"`
	ThroughputImprovementPercent float64        `json:"throughput_improvement_percent" yaml:"throughput_improvement_percent"`
	LatencyReductionPercent      float64        `json:"latency_reduction_percent" yaml:"latency_reduction_percent"`
	BaseLayerComparison          BaseComparison `json:"base_layer_comparison" yaml:"base_layer_comparison"`
	Scalability                  string         `json:"scalability" yaml:"scalability"`
	SecurityModel                string         `json:"security_model" yaml:"security_model"`
}

// Sharding models processing txVolume transactions across numShards shards.
// A fixed fifth of the transactions cross shards and pay a latency penalty.
func Sharding(txVolume float64, numShards int, tpsPerShard float64) (ShardingResult, error) {
	if err := volume(txVolume); err != nil {
		return ShardingResult{}, err
	}
	if err := positive("num_shards", float64(numShards)); err != nil {
		return ShardingResult{}, err
	}
	if err := positive("tps_per_shard", tpsPerShard); err != nil {
		return ShardingResult{}, err
	}

	totalTPS := float64(numShards) * tpsPerShard
	processingTime := txVolume / totalTPS
	improvement := math.RoundToEven(totalTPS/BaseLayerTPS*10) / 10

	crossShard := math.Floor(txVolume * crossShardRatio)
	intraShard := txVolume - crossShard

	// An empty workload has no latency to average.
	var avgLatency float64
	if txVolume > 0 {
		avgLatency = (intraShard*1.0 + crossShard*crossShardLatencyMultiplier) / txVolume
	}

	computed := []struct {
		name string
		v    float64
	}{
		{"total_tps", totalTPS},
		{"processing_time_seconds", processingTime},
		{"avg_latency_multiplier", avgLatency},
		{"improvement_factor", improvement},
	}
	for _, c := range computed {
		if err := finite(c.name, c.v); err != nil {
			return ShardingResult{}, err
		}
	}

	res := ShardingResult{
		Solution:                     fmt.Sprintf("Sharding (%d shards)", numShards),
		NumShards:                    numShards,
		TPSPerShard:                  tpsPerShard,
		TotalTPS:                     totalTPS,
		ProcessingTimeSeconds:        round2(processingTime),
		IntraShardTxs:                intraShard,
		CrossShardTxs:                crossShard,
		CrossShardPercentage:         crossShardRatio * 100,
		AvgLatencyMultiplier:         round2(avgLatency),
		ThroughputImprovementPercent: throughputImprovementPercent,
		LatencyReductionPercent:      latencyReductionPercent,
		BaseLayerComparison: BaseComparison{
			BaseTPS:           BaseLayerTPS,
			ShardedTPS:        totalTPS,
			ImprovementFactor: improvement,
		},
		Scalability:   "Linear with shard count",
		SecurityModel: "Random validator assignment per shard",
	}

	return res, nil
}
