// Package metrics holds the Prometheus collectors shared by both API implementations.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// EndpointCounter counts the calls made to each endpoint.
	EndpointCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "todoapp_endpoint_calls_total",
		Help: "Total number of calls made to each endpoint.",
	}, []string{"framework", "endpoint"})

	// ErrorCounter counts the error responses returned by each endpoint.
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "todoapp_errors_total",
		Help: "Total number of error responses returned by each endpoint.",
	}, []string{"framework", "endpoint"})
)

func init() {
	prometheus.MustRegister(EndpointCounter)
	prometheus.MustRegister(ErrorCounter)
}
