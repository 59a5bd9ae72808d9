package cli

import (
	"fmt"
	"os"
	"strconv"

	"TodoWebService/echoapi"
	"TodoWebService/ginapi"
	"TodoWebService/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	serveFramework string
	servePort      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the todo API on one of the two web frameworks",
	Long: `Starts the todo API backed by a fresh in-memory store. The two
implementations expose identical routes and status codes; pick one with
--framework so load test results can be compared between them.

The store is process-local: restarting the server resets it to empty.`,
	Example: `  # Serve with gin on the default port
  todoservice serve

  # Serve with echo on port 9090
  todoservice serve --framework echo --port 9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			fmt.Println("No .env file loaded")
		}

		port := servePort
		if port == "" {
			port = os.Getenv("PORT")
		}
		if port == "" {
			port = "8080"
		}
		addr := ":" + port

		todoStore := store.New()
		limit, burst := rateLimitFromEnv()

		switch serveFramework {
		case "gin":
			return ginapi.New(todoStore, limit, burst).Run(addr)
		case "echo":
			return echoapi.New(todoStore, limit, burst).Run(addr)
		default:
			return fmt.Errorf("unknown framework %q (want gin or echo)", serveFramework)
		}
	},
}

// rateLimitFromEnv reads RATE_LIMIT and RATE_BURST, defaulting to limits
// generous enough that the load test harness is not throttled.
func rateLimitFromEnv() (rate.Limit, int) {
	limit := rate.Limit(200)
	burst := 400
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			limit = rate.Limit(parsed)
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		}
	}
	return limit, burst
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFramework, "framework", "f", "gin", "Web framework to serve with: gin or echo")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (falls back to the PORT env var, then 8080)")
}
