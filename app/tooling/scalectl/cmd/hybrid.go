package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/spf13/cobra"
)

func newHybridCmd(opts *options) *cobra.Command {
	var txVolume, multiplier float64
	var numShards int

	hybridCmd := &cobra.Command{
		Use:   "hybrid",
		Short: "Model rollups running on every shard.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"tx_volume":         txVolume,
				"num_shards":        numShards,
				"layer2_multiplier": multiplier,
			}

			res, err := calculate(opts, "hybrid", params, func() (calculator.HybridResult, error) {
				return calculator.Hybrid(txVolume, numShards, multiplier)
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(tw *tabwriter.Writer) {
				gain := units.Improvement(calculator.BaseLayerTPS, res.TotalHybridTPS)

				fmt.Fprintf(tw, "Solution:\t%s\n", res.Solution)
				fmt.Fprintf(tw, "Base layer:\t%s\n", res.BaseLayer)
				fmt.Fprintf(tw, "Sharded TPS:\t%s\n", units.FormatNumber(res.BaseShardedTPS, 1))
				fmt.Fprintf(tw, "Hybrid TPS:\t%s\n", units.FormatNumber(res.TotalHybridTPS, 1))
				fmt.Fprintf(tw, "Processing time:\t%.2fs\n", res.ProcessingTimeSeconds)
				fmt.Fprintf(tw, "Gain over base layer:\t%.1fx\n", gain.Multiplier)
				fmt.Fprintf(tw, "Examples:\t%s\n", strings.Join(res.Examples, ", "))
			})
		},
	}

	hybridCmd.Flags().Float64VarP(&txVolume, "tx-volume", "t", calculator.DefaultTxVolume, "Number of transactions to process.")
	hybridCmd.Flags().IntVarP(&numShards, "shards", "s", calculator.DefaultHybridShards, "Number of shards.")
	hybridCmd.Flags().Float64VarP(&multiplier, "multiplier", "m", calculator.DefaultLayer2Multiplier, "Throughput multiplier of the rollups.")

	return hybridCmd
}
