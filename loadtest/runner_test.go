package loadtest

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	"TodoWebService/echoapi"
	"TodoWebService/store"

	"golang.org/x/time/rate"
)

// TestRunnerRun drives a short full run against a real service and checks
// that samples were collected and flushed to disk.
func TestRunnerRun(t *testing.T) {
	srv := httptest.NewServer(echoapi.New(store.New(), rate.Inf, 0).Handler())
	defer srv.Close()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Host = srv.URL
	cfg.Users = 3
	cfg.SpawnIntervalMs = 0
	cfg.MinWaitSec = 0
	cfg.MaxWaitSec = 0
	cfg.DurationSec = 1
	cfg.OutputDir = dir

	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if summary.TotalRequests == 0 {
		t.Fatal("Expected at least one sample from the run")
	}
	if summary.SuccessfulRequests+summary.FailedRequests != summary.TotalRequests {
		t.Errorf("Expected success and failure counts to add up to %d, got %d and %d",
			summary.TotalRequests, summary.SuccessfulRequests, summary.FailedRequests)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Error reading results directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one results file, got %d", len(entries))
	}
}

// TestNewRunnerRejectsBadConfig checks that validation happens before a run starts.
func TestNewRunnerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Users = 0
	if _, err := NewRunner(cfg); err == nil {
		t.Error("Expected an error for an invalid config")
	}
}
