package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"TodoWebService/loadtest"

	"github.com/spf13/cobra"
)

var (
	historyDB    string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past load test runs from the sqlite history",
	Example: `  # Show the last 20 runs
  todoservice history --history-db ./loadtest_history.db

  # Show every recorded run
  todoservice history --history-db ./loadtest_history.db --limit 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := loadtest.OpenHistory(historyDB)
		if err != nil {
			return err
		}
		defer history.Close()

		runs, err := history.ListRuns(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tHOST\tUSERS\tTOTAL\tOK\tFAILED\tAVG MS\tRPS\tRESULTS")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%s\n",
				run.StartedAt.Format(time.RFC3339), run.Host, run.Users,
				run.TotalRequests, run.SuccessfulRequests, run.FailedRequests,
				run.AvgResponseMs, run.Throughput, run.ResultsFile)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDB, "history-db", "loadtest_history.db", "Path of the sqlite run history")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
}
