package loadtest

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunRecord is one completed load test run as stored in the history.
type RunRecord struct {
	ID                 string
	Host               string
	Users              int
	StartedAt          time.Time
	StoppedAt          time.Time
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	MinResponseMs      float64
	MaxResponseMs      float64
	AvgResponseMs      float64
	Throughput         float64
	ResultsFile        string
}

// History persists run summaries in sqlite so past runs can be compared.
type History struct {
	db *sql.DB
}

// OpenHistory opens (and if needed initializes) the run history database.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS load_test_runs (
			id TEXT PRIMARY KEY,
			host TEXT NOT NULL,
			users INTEGER NOT NULL,
			started_at TIMESTAMP NOT NULL,
			stopped_at TIMESTAMP NOT NULL,
			total_requests INTEGER NOT NULL,
			successful_requests INTEGER NOT NULL,
			failed_requests INTEGER NOT NULL,
			min_response_ms REAL NOT NULL,
			max_response_ms REAL NOT NULL,
			avg_response_ms REAL NOT NULL,
			throughput REAL NOT NULL,
			results_file TEXT
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun inserts one run record.
func (h *History) SaveRun(run *RunRecord) error {
	_, err := h.db.Exec(`
		INSERT INTO load_test_runs
		(id, host, users, started_at, stopped_at, total_requests, successful_requests,
		 failed_requests, min_response_ms, max_response_ms, avg_response_ms, throughput, results_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Host, run.Users, run.StartedAt, run.StoppedAt, run.TotalRequests,
		run.SuccessfulRequests, run.FailedRequests, run.MinResponseMs, run.MaxResponseMs,
		run.AvgResponseMs, run.Throughput, run.ResultsFile)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A limit of 0 means no limit.
func (h *History) ListRuns(limit int) ([]*RunRecord, error) {
	query := `
		SELECT id, host, users, started_at, stopped_at, total_requests, successful_requests,
		       failed_requests, min_response_ms, max_response_ms, avg_response_ms, throughput,
		       COALESCE(results_file, '')
		FROM load_test_runs
		ORDER BY started_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := h.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		run := &RunRecord{}
		err := rows.Scan(&run.ID, &run.Host, &run.Users, &run.StartedAt, &run.StoppedAt,
			&run.TotalRequests, &run.SuccessfulRequests, &run.FailedRequests,
			&run.MinResponseMs, &run.MaxResponseMs, &run.AvgResponseMs, &run.Throughput,
			&run.ResultsFile)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
