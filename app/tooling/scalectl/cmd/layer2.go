package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/spf13/cobra"
)

func newLayer2Cmd(opts *options) *cobra.Command {
	var txVolume, batchSize, gasPrice float64

	layer2Cmd := &cobra.Command{
		Use:   "layer2",
		Short: "Compare optimistic and zk rollups for a workload.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"tx_volume":  txVolume,
				"batch_size": batchSize,
				"gas_price":  gasPrice,
			}

			res, err := calculate(opts, "layer2", params, func() (calculator.Layer2Result, error) {
				return calculator.Layer2(txVolume, batchSize, gasPrice)
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "SOLUTION\tTPS\tTIME\tBATCHES\tL1 COST\tL2 COST\tSAVINGS\tFINALITY")
				for _, r := range []calculator.Rollup{res.Optimistic, res.ZK} {
					fmt.Fprintf(tw, "%s\t%s\t%.2fs\t%s\t%s\t%s\t%.2f%%\t%s\n",
						r.Solution,
						units.FormatNumber(r.TPS, 1),
						r.ProcessingTimeSeconds,
						units.FormatNumber(r.NumBatches, 1),
						units.FormatCurrency(r.L1CostGwei, units.GWEI),
						units.FormatCurrency(r.L2CostGwei, units.GWEI),
						r.CostSavingsPercent,
						r.FinalityTime,
					)
				}
				fmt.Fprintf(tw, "\nLower cost: %s\tMaturity: %s\n", res.Comparison.LowerCost, res.Comparison.Maturity)
			})
		},
	}

	layer2Cmd.Flags().Float64VarP(&txVolume, "tx-volume", "t", calculator.DefaultTxVolume, "Number of transactions to process.")
	layer2Cmd.Flags().Float64VarP(&batchSize, "batch-size", "b", calculator.DefaultBatchSize, "Transactions per rollup batch.")
	layer2Cmd.Flags().Float64VarP(&gasPrice, "gas-price", "g", calculator.DefaultGasPrice, "Gas price in gwei.")

	return layer2Cmd
}
