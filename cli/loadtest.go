package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"TodoWebService/loadtest"

	"github.com/spf13/cobra"
)

var (
	hostOverride      string
	usersOverride     int
	durationOverride  time.Duration
	outputDirOverride string
	historyDBOverride string
)

var loadtestCmd = &cobra.Command{
	Use:   "loadtest",
	Short: "Run the load test harness against a running todo service",
	Long: `Drives the todo API with weighted synthetic traffic: each virtual user
lists todos (weight 3), creates todos (weight 2), updates its own todos
(weight 1) and deletes them (weight 1), pausing 1-3 seconds between actions.

Every request is timed and recorded; when the run stops the samples are
written to a timestamped CSV in the results directory and a summary with
min/max/average latency and throughput is printed. Press Ctrl-C to stop a
run early; results are still saved.`,
	Example: `  # Run with defaults (uses loadtest.yaml when present)
  todoservice loadtest

  # 50 users for two minutes against the echo server
  todoservice loadtest --host http://localhost:9090 --users 50 --duration 2m

  # Keep a sqlite history of run summaries
  todoservice loadtest --history-db ./loadtest_history.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load config
		cfg, err := loadtest.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if hostOverride != "" {
			cfg.Host = hostOverride
		}
		if usersOverride > 0 {
			cfg.Users = usersOverride
		}
		if durationOverride > 0 {
			cfg.DurationSec = int(durationOverride / time.Second)
		}
		if outputDirOverride != "" {
			cfg.OutputDir = outputDirOverride
		}
		if historyDBOverride != "" {
			cfg.HistoryDB = historyDBOverride
		}

		// 3. Execution
		runner, err := loadtest.NewRunner(cfg)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		_, err = runner.Run(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(loadtestCmd)

	loadtestCmd.Flags().StringVar(&hostOverride, "host", "", "Base URL of the todo service under test")
	loadtestCmd.Flags().IntVarP(&usersOverride, "users", "u", 0, "Number of concurrent virtual users")
	loadtestCmd.Flags().DurationVarP(&durationOverride, "duration", "d", 0, "Run duration (e.g. 90s, 2m)")
	loadtestCmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Directory for the metrics CSV")
	loadtestCmd.Flags().StringVar(&historyDBOverride, "history-db", "", "Path of the sqlite run history (disabled when empty)")
}
