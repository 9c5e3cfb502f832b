package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comalice/scdiff/internal/results"
)

var listCmd = &cobra.Command{
	Use:   "list <result-file>",
	Short: "Tabulate comparison results clearing given thresholds",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Float64("threshold", 0, "minimum similarity to list")
	listCmd.Flags().Float64("max-threshold", 0, "minimum max_similarity to list")
	listCmd.Flags().Float64("state-threshold", 0, "minimum state_similarity to list")

	// Bound to viper so SCDIFF_THRESHOLD / SCDIFF_MAX_THRESHOLD /
	// SCDIFF_STATE_THRESHOLD env vars can supply these without a flag.
	viper.BindPFlag("threshold", listCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("max-threshold", listCmd.Flags().Lookup("max-threshold"))
	viper.BindPFlag("state-threshold", listCmd.Flags().Lookup("state-threshold"))
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := results.NewStore(args[0])
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	threshold := viper.GetFloat64("threshold")
	maxThreshold := viper.GetFloat64("max-threshold")
	stateThreshold := viper.GetFloat64("state-threshold")

	fmt.Printf("%-4s  %-30s  %-30s  %8s  %8s  %8s  %6s\n", "id", "path_a", "path_b", "sim", "max_sim", "state_sim", "greedy")
	for i, r := range records {
		if r.Similarity < threshold {
			continue
		}
		if r.MaxSimilarity < maxThreshold {
			continue
		}
		if r.StateSimilarity < stateThreshold {
			continue
		}
		fmt.Printf("%-4d  %-30s  %-30s  %8.4f  %8.4f  %8.4f  %6t\n",
			i, r.PathA, r.PathB, r.Similarity, r.MaxSimilarity, r.StateSimilarity, r.IsGreedy)
	}
	return nil
}
