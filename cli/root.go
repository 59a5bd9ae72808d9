// Package cli defines the cobra commands for the todo service binary:
// serve (either API implementation), loadtest, and history.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the load test config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "todoservice",
		Short: "A todo CRUD API served over gin or echo, with a built-in load test harness",
		Long: `todoservice exposes the same minimal todo-list CRUD API over two web
frameworks (gin and echo) and ships a load test harness that drives either
implementation over HTTP. Use 'serve --help' and 'loadtest --help' for options.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "load test config file (default is ./loadtest.yaml)")
}
