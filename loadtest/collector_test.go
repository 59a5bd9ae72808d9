package loadtest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestCollectorSave checks the CSV layout: header plus one row per sample,
// written to a timestamp-named file in the results directory.
func TestCollectorSave(t *testing.T) {
	dir := t.TempDir()
	c := NewCollector()
	c.Add(Sample{
		Timestamp:       time.Now(),
		RequestType:     "GET",
		Name:            "/todos",
		ResponseTimeMs:  12.5,
		ResponseLength:  42,
		ResponseCode:    200,
		ConcurrentUsers: 3,
		Success:         true,
	})
	c.Add(Sample{
		Timestamp:      time.Now(),
		RequestType:    "POST",
		Name:           "/todos",
		ResponseTimeMs: 7.25,
		ResponseCode:   400,
	})

	path, err := c.Save(dir)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Expected the file in %s, got %s", dir, path)
	}
	if !strings.HasPrefix(filepath.Base(path), "performance_metrics_") {
		t.Errorf("Expected a performance_metrics_ file name, got %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Error opening results file: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Error reading results file: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	wantHeader := "timestamp,request_type,name,response_time,response_length,response_code,concurrent_users,success"
	if strings.Join(records[0], ",") != wantHeader {
		t.Errorf("Expected header %q, got %q", wantHeader, strings.Join(records[0], ","))
	}
	if records[1][1] != "GET" || records[1][3] != "12.50" || records[1][7] != "true" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if records[2][5] != "400" || records[2][7] != "false" {
		t.Errorf("Unexpected second row: %v", records[2])
	}
}

// TestCollectorSaveEmpty checks that a run with no samples refuses to write a file.
func TestCollectorSaveEmpty(t *testing.T) {
	c := NewCollector()
	if _, err := c.Save(t.TempDir()); err == nil {
		t.Error("Expected an error when saving with no samples")
	}
}

// TestCollectorConcurrentAppend checks that appends from many goroutines are not lost.
func TestCollectorConcurrentAppend(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	const users, perUser = 20, 50
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perUser; j++ {
				c.Add(Sample{RequestType: "GET", Name: "/todos", Success: true})
			}
		}()
	}
	wg.Wait()
	if got := len(c.Samples()); got != users*perUser {
		t.Errorf("Expected %d samples, got %d", users*perUser, got)
	}
}
