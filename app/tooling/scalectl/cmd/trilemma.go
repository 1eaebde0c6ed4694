package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/spf13/cobra"
)

func newTrilemmaCmd(opts *options) *cobra.Command {
	var scalability, security, decentralization float64

	trilemmaCmd := &cobra.Command{
		Use:   "trilemma",
		Short: "Score how evenly a design trades off the trilemma.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"scalability":      scalability,
				"security":         security,
				"decentralization": decentralization,
			}

			res, err := calculate(opts, "trilemma", params, func() (calculator.TrilemmaScore, error) {
				return calculator.Trilemma(scalability, security, decentralization)
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Balanced score:\t%.2f\n", res.BalancedScore)
				fmt.Fprintf(tw, "Variance:\t%.2f\n", res.TradeOffVariance)
				fmt.Fprintf(tw, "Balanced:\t%t\n", res.IsBalanced)
				fmt.Fprintf(tw, "Weakest:\t%s\n", res.WeakestDimension)
				fmt.Fprintf(tw, "Strongest:\t%s\n", res.StrongestDimension)
				fmt.Fprintf(tw, "Recommendation:\t%s\n", res.Recommendation)
			})
		},
	}

	trilemmaCmd.Flags().Float64Var(&scalability, "scalability", calculator.DefaultTrilemmaScore, "Scalability score in [0,100].")
	trilemmaCmd.Flags().Float64Var(&security, "security", calculator.DefaultTrilemmaScore, "Security score in [0,100].")
	trilemmaCmd.Flags().Float64Var(&decentralization, "decentralization", calculator.DefaultTrilemmaScore, "Decentralization score in [0,100].")

	return trilemmaCmd
}
