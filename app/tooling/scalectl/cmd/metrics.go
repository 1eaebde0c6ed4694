package cmd

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/ardanlabs/scalability/business/core/catalog"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/spf13/cobra"
)

// Set of metric categories.
const (
	metricsAll        = "all"
	metricsBase       = "base"
	metricsLayer2     = "layer2"
	metricsSharding   = "sharding"
	metricsTrilemma   = "trilemma"
	metricsComparison = "comparison"
	metricsSecurity   = "security"
)

var metricsCategories = []string{
	metricsAll,
	metricsBase,
	metricsLayer2,
	metricsSharding,
	metricsTrilemma,
	metricsComparison,
	metricsSecurity,
}

func newMetricsCmd(opts *options) *cobra.Command {
	metricsCmd := &cobra.Command{
		Use:       "metrics [category]",
		Short:     "Print the published figures of a category.",
		Long:      fmt.Sprintf("Print the published figures of a category. Categories: %v", metricsCategories),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: metricsCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := metricsAll
			if len(args) == 1 {
				category = args[0]
			}

			w := cmd.OutOrStdout()
			path := "metrics/" + category

			switch category {
			case metricsBase:
				v, err := fetch(opts, path, local(catalog.BaseLayers))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) { baseText(tw, v) })

			case metricsLayer2:
				v, err := fetch(opts, path, local(catalog.Layer2Solutions))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) { layer2Text(tw, v) })

			case metricsSharding:
				v, err := fetch(opts, path, local(catalog.ShardingSolutions))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) { shardingText(tw, v) })

			case metricsTrilemma:
				v, err := fetch(opts, path, local(catalog.Trilemma))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "DESIGN\tSCALABILITY\tSECURITY\tDECENTRALIZATION")
					for _, design := range slices.Sorted(maps.Keys(v)) {
						p := v[design]
						fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", design, p.Scalability, p.Security, p.Decentralization)
					}
				})

			case metricsComparison:
				v, err := fetch(opts, path, local(catalog.Comparison))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "APPROACH\tTHROUGHPUT\tSECURITY\tCOST\tBEST FOR")
					for _, approach := range slices.Sorted(maps.Keys(v)) {
						s := v[approach]
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", approach, s.Throughput, s.Security, s.CostEfficiency, s.BestFor)
					}
				})

			case metricsSecurity:
				v, err := fetch(opts, path, local(catalog.SecurityVectors))
				if err != nil {
					return err
				}
				return render(w, opts.output, v, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "CATEGORY\tATTACK\tLIKELIHOOD\tIMPACT")
					for _, cat := range slices.Sorted(maps.Keys(v)) {
						for _, attack := range slices.Sorted(maps.Keys(v[cat])) {
							t := v[cat][attack]
							fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", cat, attack, t.Likelihood, t.Impact)
						}
					}
				})
			}

			v, err := fetch(opts, path, local(catalog.AllSolutions))
			if err != nil {
				return err
			}
			return render(w, opts.output, v, func(tw *tabwriter.Writer) {
				baseText(tw, v.Base)
				fmt.Fprintln(tw)
				layer2Text(tw, v.Layer2)
				fmt.Fprintln(tw)
				shardingText(tw, v.Sharding)
			})
		},
	}

	return metricsCmd
}

func newSolutionCmd(opts *options) *cobra.Command {
	solutionCmd := &cobra.Command{
		Use:   "solution <id>",
		Short: "Print a single solution by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			entry, err := fetch(opts, "metrics/solution/"+id, func() (catalog.Entry, error) {
				return catalog.Lookup(id)
			})
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}

			return render(cmd.OutOrStdout(), opts.output, entry, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "ID:\t%s\n", entry.ID)
				fmt.Fprintf(tw, "Category:\t%s\n", entry.Category)
				fmt.Fprintf(tw, "Record:\t%+v\n", entry.Record)
			})
		},
	}

	return solutionCmd
}

// =============================================================================

// local adapts a catalog accessor to the signature fetch expects.
func local[T any](f func() T) func() (T, error) {
	return func() (T, error) {
		return f(), nil
	}
}

func baseText(tw *tabwriter.Writer, v map[string]catalog.BaseLayer) {
	fmt.Fprintln(tw, "BASE LAYER\tTPS\tBLOCK TIME\tCONSENSUS\tFINALITY")
	for _, id := range ordered(catalog.BaseLayerIDs(), v) {
		b := v[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Name, units.FormatNumber(float64(b.TPS), 1), b.BlockTime, b.Consensus, b.FinalityTime)
	}
}

func layer2Text(tw *tabwriter.Writer, v map[string]catalog.Layer2) {
	fmt.Fprintln(tw, "LAYER 2\tTYPE\tTPS\tCOST\tFINALITY\tWITHDRAWAL")
	for _, id := range ordered(catalog.Layer2IDs(), v) {
		s := v[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Name, s.Type, units.FormatNumber(float64(s.TPS), 1),
			units.FormatCurrency(s.AvgTransactionCostUSD, units.USD), s.FinalityTime, s.WithdrawalDelay)
	}
}

func shardingText(tw *tabwriter.Writer, v map[string]catalog.Sharding) {
	fmt.Fprintln(tw, "SHARDING\tSTATUS\tSHARDS\tTOTAL TPS\tCROSS SHARD LATENCY")
	for _, id := range ordered(catalog.ShardingIDs(), v) {
		s := v[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Status, s.NumShards, units.FormatNumber(float64(s.TotalTPS), 1), s.CrossShardLatency)
	}
}

// ordered returns the ids in presentation order followed by any ids the
// order does not know about.
func ordered[V any](order []string, v map[string]V) []string {
	ids := make([]string, 0, len(v))
	for _, id := range order {
		if _, exists := v[id]; exists {
			ids = append(ids, id)
		}
	}

	for _, id := range slices.Sorted(maps.Keys(v)) {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	return ids
}
