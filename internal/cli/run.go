package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/lesson"
	"github.com/rajagopal17/KDD19-tutorial/internal/runstore"
)

func runCmd() *cobra.Command {
	var configPath string
	var epochs int
	var batchSize int
	var lr float64
	var seed int64
	var algorithm string
	var datasetCSV string
	var outDir string

	c := &cobra.Command{
		Use:   "run <lesson>",
		Short: "Run one lesson, narrating to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lesson.Get(args[0])
			if err != nil {
				return err
			}

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			// Flags set on the command line override the file.
			flags := cmd.Flags()
			if flags.Changed("epochs") {
				cfg.Epochs = epochs
			}
			if flags.Changed("batch-size") {
				cfg.BatchSize = batchSize
			}
			if flags.Changed("lr") {
				cfg.LR = lr
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("algorithm") {
				cfg.Algorithm = algorithm
			}
			if flags.Changed("dataset") {
				cfg.DatasetCSV = datasetCSV
			}
			if flags.Changed("out") {
				cfg.OutDir = outDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			startedAt := time.Now()
			report, err := l.Run(cmd.Context(), cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if cfg.OutDir != "" {
				store := runstore.New(cfg.OutDir)
				id, err := store.Save(runstore.Record{
					Lesson:    l.Name(),
					StartedAt: startedAt,
					Config:    runstore.EchoConfig(cfg),
					Report:    *report,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nsaved run %s\n", id)
			}

			if !report.Passed() {
				return fmt.Errorf("lesson %s: %d check(s) failed", l.Name(), failedChecks(report))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (flags override it)")
	c.Flags().IntVar(&epochs, "epochs", 0, "Training epochs")
	c.Flags().IntVar(&batchSize, "batch-size", 0, "Mini-batch size")
	c.Flags().Float64Var(&lr, "lr", 0, "Learning rate")
	c.Flags().Int64Var(&seed, "seed", 0, "Random seed for data and shuffling")
	c.Flags().StringVar(&algorithm, "algorithm", "", "Optimizer: sgd or adam")
	c.Flags().StringVar(&datasetCSV, "dataset", "", "Numeric CSV dataset (last column is the label)")
	c.Flags().StringVarP(&outDir, "out", "o", "", "Directory for JSON run artifacts")
	return c
}

func failedChecks(report *lesson.Report) int {
	n := 0
	for _, check := range report.Checks {
		if !check.Pass {
			n++
		}
	}
	return n
}
