// Package loadtest drives the todo API with synthetic traffic from many
// concurrent virtual users, records one metric sample per request, and
// flushes the samples to a timestamped CSV when the run stops.
package loadtest

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runner owns one load test run: it spawns the virtual users, waits for the
// configured duration or an interrupt, then saves and reports the results.
type Runner struct {
	cfg         *Config
	collector   *Collector
	client      *http.Client
	log         *logrus.Logger
	activeUsers atomic.Int32
}

// NewRunner validates the configuration and prepares a run.
func NewRunner(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
	return &Runner{
		cfg:       cfg,
		collector: NewCollector(),
		client: &http.Client{
			Timeout: cfg.RequestTimeout(),
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        cfg.Users * 2,
				MaxIdleConnsPerHost: cfg.Users * 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}, nil
}

// Run executes the load test until the configured duration elapses or the
// context is cancelled, whichever comes first. Results are flushed to CSV and
// to the run history before returning; failures to persist are logged and do
// not fail the run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	if d := r.cfg.Duration(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	r.log.WithFields(logrus.Fields{
		"run id": runID,
		"host":   r.cfg.Host,
		"users":  r.cfg.Users,
	}).Info("Starting load test")

	var wg sync.WaitGroup
	startedAt := r.collector.Start()
	for i := 0; i < r.cfg.Users; i++ {
		if i > 0 && r.cfg.SpawnInterval() > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(r.cfg.SpawnInterval()):
			}
		}
		if ctx.Err() != nil {
			break
		}
		user := NewVirtualUser(i, r.cfg, r.client, r.collector, func() int {
			return int(r.activeUsers.Load())
		})
		wg.Add(1)
		r.activeUsers.Add(1)
		go func() {
			defer wg.Done()
			defer r.activeUsers.Add(-1)
			user.Run(ctx)
		}()
	}

	<-ctx.Done()
	wg.Wait()

	summary := r.collector.Summary()
	r.report(summary)

	resultsFile, err := r.collector.Save(r.cfg.OutputDir)
	if err != nil {
		r.log.Error("Error saving performance metrics: " + err.Error())
	} else {
		r.log.Info("Performance metrics saved to " + resultsFile)
	}

	if r.cfg.HistoryDB != "" {
		if err := r.saveHistory(runID, startedAt, summary, resultsFile); err != nil {
			r.log.Error("Error saving run history: " + err.Error())
		}
	}
	return summary, nil
}

// report prints the run summary.
func (r *Runner) report(s Summary) {
	r.log.WithFields(logrus.Fields{
		"total requests":      s.TotalRequests,
		"successful requests": s.SuccessfulRequests,
		"failed requests":     s.FailedRequests,
		"min response ms":     s.MinResponseMs,
		"max response ms":     s.MaxResponseMs,
		"avg response ms":     s.AvgResponseMs,
		"throughput rps":      s.Throughput,
	}).Info("Load test summary")
}

// saveHistory records the run summary in the sqlite history.
func (r *Runner) saveHistory(runID string, startedAt time.Time, s Summary, resultsFile string) error {
	history, err := OpenHistory(r.cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer history.Close()
	return history.SaveRun(&RunRecord{
		ID:                 runID,
		Host:               r.cfg.Host,
		Users:              r.cfg.Users,
		StartedAt:          startedAt,
		StoppedAt:          time.Now(),
		TotalRequests:      s.TotalRequests,
		SuccessfulRequests: s.SuccessfulRequests,
		FailedRequests:     s.FailedRequests,
		MinResponseMs:      s.MinResponseMs,
		MaxResponseMs:      s.MaxResponseMs,
		AvgResponseMs:      s.AvgResponseMs,
		Throughput:         s.Throughput,
		ResultsFile:        resultsFile,
	})
}
