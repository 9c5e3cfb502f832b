package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comalice/scdiff/internal/diffing"
	"github.com/comalice/scdiff/internal/fixture"
	"github.com/comalice/scdiff/internal/obslog"
	"github.com/comalice/scdiff/internal/results"

	"github.com/comalice/scdiff"
)

var (
	compareOutput    string
	compareUseGreedy bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <dir>",
	Short: "Compare every pair of statechart fixtures in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "results.yaml", "path to write the comparison results")
	compareCmd.Flags().BoolVar(&compareUseGreedy, "force-greedy", false, "always use the greedy matcher")
	viper.BindPFlag("output", compareCmd.Flags().Lookup("output"))
}

type pairJob struct {
	pathA, pathB string
}

func runCompare(cmd *cobra.Command, args []string) error {
	dir := args[0]
	charts, paths, err := fixture.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load fixtures from %s: %w", dir, err)
	}
	if len(paths) < 2 {
		return fmt.Errorf("need at least two fixtures in %s, found %d", dir, len(paths))
	}

	var jobs []pairJob
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			jobs = append(jobs, pairJob{pathA: paths[i], pathB: paths[j]})
		}
	}

	workers := runtime.GOMAXPROCS(0)
	jobCh := make(chan pairJob)
	var mu sync.Mutex
	var records []results.Record

	var opts []scdiff.Option
	if compareUseGreedy {
		opts = append(opts, scdiff.WithForceGreedy())
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				res, err := scdiff.Compare(charts[job.pathA], charts[job.pathB], opts...)
				if err != nil {
					obslog.ComparisonFailure(logger, job.pathA, job.pathB, err)
					continue
				}
				sim := diffing.Similarities{
					Similarity:        res.Similarity,
					SingleSimilarity0: res.SingleSimilarity0,
					SingleSimilarity1: res.SingleSimilarity1,
					MaxSimilarity:     res.MaxSimilarity,
					StateSimilarity:   res.StateSimilarity,
				}
				record := results.FromDiff(job.pathA, job.pathB, res.Diff, sim, res.IsGreedy)
				mu.Lock()
				records = append(records, record)
				mu.Unlock()
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	outPath := viper.GetString("output")
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dir, outPath)
	}
	store, err := results.NewStore(outPath)
	if err != nil {
		return fmt.Errorf("open results store: %w", err)
	}
	if err := store.SaveAll(records); err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	logger.Info("comparison complete", "pairs", len(jobs), "written", len(records), "output", outPath)
	return nil
}
