package loadtest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Sample is one timed, outcome-tagged observation of a single request.
type Sample struct {
	Timestamp       time.Time
	RequestType     string
	Name            string
	ResponseTimeMs  float64
	ResponseLength  int64
	ResponseCode    int
	ConcurrentUsers int
	Success         bool
}

// Collector accumulates samples for the lifetime of a run. Appends are safe
// under concurrent use from many virtual users.
type Collector struct {
	mu      sync.Mutex
	samples []Sample
	start   time.Time
}

// NewCollector returns a collector whose run clock starts now.
func NewCollector() *Collector {
	return &Collector{
		samples: make([]Sample, 0, 1000),
		start:   time.Now(),
	}
}

// Add appends one sample.
func (c *Collector) Add(s Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, s)
}

// Samples returns a copy of everything collected so far, in arrival order.
func (c *Collector) Samples() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	return out
}

// Start returns the run start time.
func (c *Collector) Start() time.Time {
	return c.start
}

// Summary aggregates everything collected so far against the run clock.
func (c *Collector) Summary() Summary {
	return Summarize(c.Samples(), time.Since(c.start))
}

// Save writes all samples to a CSV file in dir, named with the current
// timestamp, and returns the file path. The directory is created if needed.
func (c *Collector) Save(dir string) (string, error) {
	samples := c.Samples()
	if len(samples) == 0 {
		return "", fmt.Errorf("no metrics to save")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("performance_metrics_%s.csv", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"timestamp", "request_type", "name", "response_time",
		"response_length", "response_code", "concurrent_users", "success",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, s := range samples {
		record := []string{
			s.Timestamp.Format(time.RFC3339Nano),
			s.RequestType,
			s.Name,
			fmt.Sprintf("%.2f", s.ResponseTimeMs),
			strconv.FormatInt(s.ResponseLength, 10),
			strconv.Itoa(s.ResponseCode),
			strconv.Itoa(s.ConcurrentUsers),
			strconv.FormatBool(s.Success),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}
