package loadtest

import "time"

// Summary holds the aggregate statistics of a completed run.
type Summary struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	MinResponseMs      float64
	MaxResponseMs      float64
	AvgResponseMs      float64
	Duration           time.Duration
	// Throughput is samples per second over the run duration.
	Throughput float64
}

// Summarize computes the run summary over the given samples and elapsed time.
// Average latency is the arithmetic mean of the recorded response times;
// throughput is the sample count divided by the elapsed run duration.
func Summarize(samples []Sample, elapsed time.Duration) Summary {
	s := Summary{
		TotalRequests: len(samples),
		Duration:      elapsed,
	}
	if len(samples) == 0 {
		return s
	}

	var total float64
	s.MinResponseMs = samples[0].ResponseTimeMs
	s.MaxResponseMs = samples[0].ResponseTimeMs
	for _, sample := range samples {
		if sample.Success {
			s.SuccessfulRequests++
		} else {
			s.FailedRequests++
		}
		total += sample.ResponseTimeMs
		if sample.ResponseTimeMs < s.MinResponseMs {
			s.MinResponseMs = sample.ResponseTimeMs
		}
		if sample.ResponseTimeMs > s.MaxResponseMs {
			s.MaxResponseMs = sample.ResponseTimeMs
		}
	}
	s.AvgResponseMs = total / float64(len(samples))
	if elapsed > 0 {
		s.Throughput = float64(len(samples)) / elapsed.Seconds()
	}
	return s
}
