// Package cmd implements the scdiff CLI: a thin, external collaborator
// that drives the pure scdiff.Compare façade over a directory of fixture
// statecharts, persists the results, and reports them back.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comalice/scdiff/internal/obslog"
)

var (
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scdiff",
	Short: "Detect plagiarism between hierarchical statecharts",
	Long: `scdiff normalises and compares hierarchical statecharts, reporting a
similarity score and the concrete state/transition/hierarchy
correspondences that justify it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = obslog.New(verbose)
	},
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	viper.SetEnvPrefix("SCDIFF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
