package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *options) *cobra.Command {
	var txVolume float64

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every approach for the same workload.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"tx_volume": txVolume,
			}

			res, err := calculate(opts, "compare", params, func() (calculator.Comparison, error) {
				return calculator.CompareAll(txVolume)
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(tw *tabwriter.Writer) {
				s := res.Solutions

				fmt.Fprintf(tw, "Transactions:\t%s\n\n", units.FormatNumber(res.TransactionVolume, 1))
				fmt.Fprintln(tw, "APPROACH\tTPS\tTIME")
				fmt.Fprintf(tw, "%s\t%s\t%.2fh\n", s.BaseLayer.Name, units.FormatNumber(s.BaseLayer.TPS, 1), s.BaseLayer.ProcessingTimeHours)
				fmt.Fprintf(tw, "%s\t%s\t%.2fs\n", s.Layer2Optimistic.Solution, units.FormatNumber(s.Layer2Optimistic.TPS, 1), s.Layer2Optimistic.ProcessingTimeSeconds)
				fmt.Fprintf(tw, "%s\t%s\t%.2fs\n", s.Layer2ZK.Solution, units.FormatNumber(s.Layer2ZK.TPS, 1), s.Layer2ZK.ProcessingTimeSeconds)
				fmt.Fprintf(tw, "%s\t%s\t%.2fs\n", s.Sharding.Solution, units.FormatNumber(s.Sharding.TotalTPS, 1), s.Sharding.ProcessingTimeSeconds)
				fmt.Fprintf(tw, "%s\t%s\t%.2fs\n", s.Hybrid.Solution, units.FormatNumber(s.Hybrid.TotalHybridTPS, 1), s.Hybrid.ProcessingTimeSeconds)

				r := res.Rankings
				fmt.Fprintln(tw)
				fmt.Fprintf(tw, "Fastest:\t%s\n", r.Fastest)
				fmt.Fprintf(tw, "Most secure:\t%s\n", r.MostSecure)
				fmt.Fprintf(tw, "Most decentralized:\t%s\n", r.MostDecentralized)
				fmt.Fprintf(tw, "Best cost:\t%s\n", r.BestCost)
				fmt.Fprintf(tw, "Production ready:\t%s\n", r.ProductionReady)
				fmt.Fprintf(tw, "Future potential:\t%s\n", r.FuturePotential)
			})
		},
	}

	compareCmd.Flags().Float64VarP(&txVolume, "tx-volume", "t", calculator.DefaultTxVolume, "Number of transactions to process.")

	return compareCmd
}
