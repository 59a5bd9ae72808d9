package loadtest

import (
	"testing"
	"time"
)

// TestHistorySaveAndList checks the sqlite round trip for run summaries.
func TestHistorySaveAndList(t *testing.T) {
	history, err := OpenHistory(":memory:")
	if err != nil {
		t.Fatalf("OpenHistory returned error: %v", err)
	}
	defer history.Close()

	started := time.Now().Add(-time.Minute)
	runs := []*RunRecord{
		{ID: "run-a", Host: "http://localhost:8080", Users: 10, StartedAt: started,
			StoppedAt: started.Add(30 * time.Second), TotalRequests: 100,
			SuccessfulRequests: 95, FailedRequests: 5, MinResponseMs: 1.5,
			MaxResponseMs: 80, AvgResponseMs: 12.25, Throughput: 3.3,
			ResultsFile: "performance_results/performance_metrics_a.csv"},
		{ID: "run-b", Host: "http://localhost:9090", Users: 50,
			StartedAt: started.Add(time.Minute), StoppedAt: started.Add(2 * time.Minute),
			TotalRequests: 500, SuccessfulRequests: 500, AvgResponseMs: 8,
			Throughput: 8.1},
	}
	for _, run := range runs {
		if err := history.SaveRun(run); err != nil {
			t.Fatalf("SaveRun(%s) returned error: %v", run.ID, err)
		}
	}

	listed, err := history.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(listed))
	}
	// Newest first.
	if listed[0].ID != "run-b" || listed[1].ID != "run-a" {
		t.Errorf("Expected runs newest first, got %s then %s", listed[0].ID, listed[1].ID)
	}
	if listed[1].TotalRequests != 100 || listed[1].SuccessfulRequests != 95 {
		t.Errorf("Unexpected counts in stored run: %+v", listed[1])
	}
	if listed[1].AvgResponseMs != 12.25 || listed[1].Throughput != 3.3 {
		t.Errorf("Unexpected stats in stored run: %+v", listed[1])
	}

	limited, err := history.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "run-b" {
		t.Errorf("Expected only the newest run, got %+v", limited)
	}
}
