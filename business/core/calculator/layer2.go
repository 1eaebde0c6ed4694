package calculator

import (
	"math"

	"github.com/ethereum/go-ethereum/params"
)

// Rollup model constants. The cost reductions are the midpoint and the upper
// end of the published 10-100x range and the savings are reported as the
// published figures.
const (
	rollupTPS            = 3000
	optimisticCostFactor = 55
	zkCostFactor         = 60
	optimisticSavings    = 98.18
	zkSavings            = 98.33
)

// Rollup holds the performance of a single rollup design.
type Rollup struct {
	Solution              string  `json:"solution" yaml:"solution"`
	TPS                   float64 `json:"tps" yaml:"tps"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds" yaml:"processing_time_seconds"`
	NumBatches            float64 `json:"num_batches" yaml:"num_batches"`
	L1CostGwei            float64 `json:"l1_cost_gwei" yaml:"l1_cost_gwei"`
	L2CostGwei            float64 `json:"l2_cost_gwei" yaml:"l2_cost_gwei"`
	L1CostETH             float64 `json:"l1_cost_eth" yaml:"l1_cost_eth"`
	L2CostETH             float64 `json:"l2_cost_eth" yaml:"l2_cost_eth"`
	CostSavingsPercent    float64 `json:"cost_savings_percent" yaml:"cost_savings_percent"`
	FinalityTime          string  `json:"finality_time" yaml:"finality_time"`
	WithdrawalDelay       string  `json:"withdrawal_delay" yaml:"withdrawal_delay"`
	SecurityInheritance   string  `json:"security_inheritance" yaml:"security_inheritance"`
}

// RollupVerdict names the rollup design that wins each category.
type RollupVerdict struct {
	FasterFinality   string `json:"faster_finality" yaml:"faster_finality"`
	FasterWithdrawal string `json:"faster_withdrawal" yaml:"faster_withdrawal"`
	LowerCost        string `json:"lower_cost" yaml:"lower_cost"`
	Maturity         string `json:"maturity" yaml:"maturity"`
}

// Layer2Result compares optimistic and zero knowledge rollups for the
// same workload.
type Layer2Result struct {
	Optimistic Rollup        `json:"optimistic" yaml:"optimistic"`
	ZK         Rollup        `json:"zk" yaml:"zk"`
	Comparison RollupVerdict `json:"comparison" yaml:"comparison"`
}

// Layer2 models the cost and throughput of processing txVolume transfers
// through optimistic and zero knowledge rollups. The gas price is in gwei
// and every transfer costs the base layer intrinsic gas.
func Layer2(txVolume float64, batchSize float64, gasPrice float64) (Layer2Result, error) {
	if err := volume(txVolume); err != nil {
		return Layer2Result{}, err
	}
	if err := positive("batch_size", batchSize); err != nil {
		return Layer2Result{}, err
	}
	if err := positive("gas_price", gasPrice); err != nil {
		return Layer2Result{}, err
	}

	numBatches := math.Ceil(txVolume / batchSize)
	l1Cost := txVolume * gasPrice * float64(params.TxGas)
	processingTime := txVolume / rollupTPS
	if err := finite("l1_cost", l1Cost); err != nil {
		return Layer2Result{}, err
	}

	optimisticCost := l1Cost / optimisticCostFactor
	zkCost := l1Cost / zkCostFactor

	optimistic := Rollup{
		Solution:              "Optimistic Rollup",
		TPS:                   rollupTPS,
		ProcessingTimeSeconds: round2(processingTime),
		NumBatches:            numBatches,
		L1CostGwei:            round2(l1Cost),
		L2CostGwei:            round2(optimisticCost),
		L1CostETH:             l1Cost / params.GWei,
		L2CostETH:             optimisticCost / params.GWei,
		CostSavingsPercent:    optimisticSavings,
		FinalityTime:          "7 days",
		WithdrawalDelay:       "7 days",
		SecurityInheritance:   "Full L1 security",
	}

	zk := Rollup{
		Solution:              "ZK Rollup",
		TPS:                   rollupTPS,
		ProcessingTimeSeconds: round2(processingTime),
		NumBatches:            numBatches,
		L1CostGwei:            round2(l1Cost),
		L2CostGwei:            round2(zkCost),
		L1CostETH:             l1Cost / params.GWei,
		L2CostETH:             zkCost / params.GWei,
		CostSavingsPercent:    zkSavings,
		FinalityTime:          "instant",
		WithdrawalDelay:       "minutes",
		SecurityInheritance:   "Full L1 security + ZK proofs",
	}

	res := Layer2Result{
		Optimistic: optimistic,
		ZK:         zk,
		Comparison: RollupVerdict{
			FasterFinality:   zk.Solution,
			FasterWithdrawal: zk.Solution,
			LowerCost:        zk.Solution,
			Maturity:         optimistic.Solution,
		},
	}

	return res, nil
}
