package calculator

// BaseLayerResult holds the time the base layer alone needs for a workload.
type BaseLayerResult struct {
	Name                  string  `json:"name" yaml:"name"`
	TPS                   float64 `json:"tps" yaml:"tps"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds" yaml:"processing_time_seconds"`
	ProcessingTimeHours   float64 `json:"processing_time_hours" yaml:"processing_time_hours"`
}

// Solutions bundles the result of every model for the same workload.
type Solutions struct {
	BaseLayer        BaseLayerResult `json:"base_layer" yaml:"base_layer"`
	Layer2Optimistic Rollup          `json:"layer2_optimistic" yaml:"layer2_optimistic"`
	Layer2ZK         Rollup          `json:"layer2_zk" yaml:"layer2_zk"`
	Sharding         ShardingResult  `json:"sharding" yaml:"sharding"`
	Hybrid           HybridResult    `json:"hybrid" yaml:"hybrid"`
}

// Rankings names the approach the research favors in each category.
type Rankings struct {
	Fastest           string `json:"fastest" yaml:"fastest"`
	MostSecure        string `json:"most_secure" yaml:"most_secure"`
	MostDecentralized string `json:"most_decentralized" yaml:"most_decentralized"`
	BestCost          string `json:"best_cost" yaml:"best_cost"`
	ProductionReady   string `json:"production_ready" yaml:"production_ready"`
	FuturePotential   string `json:"future_potential" yaml:"future_potential"`
}

// Comparison is the side by side view of every approach.
type Comparison struct {
	TransactionVolume float64   `json:"transaction_volume" yaml:"transaction_volume"`
	Solutions         Solutions `json:"solutions" yaml:"solutions"`
	Rankings          Rankings  `json:"rankings" yaml:"rankings"`
}

// rankings is the published verdict, independent of the workload.
var rankings = Rankings{
	Fastest:           "Hybrid Model",
	MostSecure:        "Layer 2 ZK Rollup",
	MostDecentralized: "Sharding",
	BestCost:          "Layer 2 ZK Rollup",
	ProductionReady:   "Layer 2 Optimistic Rollup",
	FuturePotential:   "Hybrid Model",
}

// CompareAll runs every model with its reference parameters for the
// same workload.
func CompareAll(txVolume float64) (Comparison, error) {
	if err := volume(txVolume); err != nil {
		return Comparison{}, err
	}

	layer2, err := Layer2(txVolume, DefaultBatchSize, DefaultGasPrice)
	if err != nil {
		return Comparison{}, err
	}

	sharding, err := Sharding(txVolume, DefaultShardingShards, DefaultTPSPerShard)
	if err != nil {
		return Comparison{}, err
	}

	hybrid, err := Hybrid(txVolume, DefaultHybridShards, DefaultLayer2Multiplier)
	if err != nil {
		return Comparison{}, err
	}

	baseTime := txVolume / BaseLayerTPS

	cmp := Comparison{
		TransactionVolume: txVolume,
		Solutions: Solutions{
			BaseLayer: BaseLayerResult{
				Name:                  "Ethereum Base Layer",
				TPS:                   BaseLayerTPS,
				ProcessingTimeSeconds: round2(baseTime),
				ProcessingTimeHours:   round2(baseTime / 3600),
			},
			Layer2Optimistic: layer2.Optimistic,
			Layer2ZK:         layer2.ZK,
			Sharding:         sharding,
			Hybrid:           hybrid,
		},
		Rankings: rankings,
	}

	return cmp, nil
}
