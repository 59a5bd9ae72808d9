// Package response contains the JSON response envelopes shared by both API implementations.
package response

import "TodoWebService/models"

// Message is the payload of the welcome endpoint and of the rate limiter rejection.
type Message struct {
	Message string `json:"message"`
}

// TodoList wraps the full ordered collection returned by the list endpoint.
type TodoList struct {
	Todos []models.Todo `json:"todos"`
}

// TodoEnvelope wraps a single todo returned by the get endpoint.
type TodoEnvelope struct {
	Todo models.Todo `json:"todo"`
}

// TodoResult is returned by the mutating endpoints: a short message plus the affected todo.
type TodoResult struct {
	Message string      `json:"message"`
	Todo    models.Todo `json:"todo"`
}

// Error is the body of every failure response.
type Error struct {
	Error string `json:"error"`
}
