package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/spf13/cobra"
)

func newShardingCmd(opts *options) *cobra.Command {
	var txVolume, tpsPerShard float64
	var numShards int

	shardingCmd := &cobra.Command{
		Use:   "sharding",
		Short: "Model a workload spread across shards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"tx_volume":     txVolume,
				"num_shards":    numShards,
				"tps_per_shard": tpsPerShard,
			}

			res, err := calculate(opts, "sharding", params, func() (calculator.ShardingResult, error) {
				return calculator.Sharding(txVolume, numShards, tpsPerShard)
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Solution:\t%s\n", res.Solution)
				fmt.Fprintf(tw, "Total TPS:\t%s\n", units.FormatNumber(res.TotalTPS, 1))
				fmt.Fprintf(tw, "Processing time:\t%.2fs\n", res.ProcessingTimeSeconds)
				fmt.Fprintf(tw, "Intra shard txs:\t%s\n", units.FormatNumber(res.IntraShardTxs, 1))
				fmt.Fprintf(tw, "Cross shard txs:\t%s (%.0f%%)\n", units.FormatNumber(res.CrossShardTxs, 1), res.CrossShardPercentage)
				fmt.Fprintf(tw, "Avg latency multiplier:\t%.2f\n", res.AvgLatencyMultiplier)
				fmt.Fprintf(tw, "Improvement factor:\t%.1fx\n", res.BaseLayerComparison.ImprovementFactor)
			})
		},
	}

	shardingCmd.Flags().Float64VarP(&txVolume, "tx-volume", "t", calculator.DefaultTxVolume, "Number of transactions to process.")
	shardingCmd.Flags().IntVarP(&numShards, "shards", "s", calculator.DefaultShardingShards, "Number of shards.")
	shardingCmd.Flags().Float64VarP(&tpsPerShard, "tps-per-shard", "p", calculator.DefaultTPSPerShard, "Throughput of each shard.")

	return shardingCmd
}
