package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/comalice/scdiff/internal/results"
)

var matchesCmd = &cobra.Command{
	Use:   "matches <result-file> <id>",
	Short: "Print the grouped diff for one comparison result",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatches,
}

func init() {
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	store, err := results.NewStore(args[0])
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	id, err := strconv.Atoi(args[1])
	if err != nil || id < 0 || id >= len(records) {
		return fmt.Errorf("invalid result id %q (must be 0..%d)", args[1], len(records)-1)
	}
	r := records[id]

	fmt.Printf("%s <-> %s\n", r.PathA, r.PathB)
	fmt.Printf("similarity=%.4f single_similarity_0=%.4f single_similarity_1=%.4f max_similarity=%.4f state_similarity=%.4f greedy=%t\n\n",
		r.Similarity, r.SingleSimilarity0, r.SingleSimilarity1, r.MaxSimilarity, r.StateSimilarity, r.IsGreedy)

	fmt.Println("matches:")
	for _, m := range r.Matches {
		fmt.Printf("  %s <-> %s  %v\n", m.Left, m.Right, m.Labels)
	}
	fmt.Println("additions:")
	for _, a := range r.Additions {
		fmt.Printf("  %s  %v\n", a.NodeID, a.Labels)
	}
	fmt.Println("deletions:")
	for _, d := range r.Deletions {
		fmt.Printf("  %s  %v\n", d.NodeID, d.Labels)
	}
	return nil
}
