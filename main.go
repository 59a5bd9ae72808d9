// TodoWebService is a web service that provides CRUD operations for todos,
// implemented twice over two web frameworks (gin and echo) with an identical
// HTTP contract, plus a load test harness that drives either implementation.
//
// The following endpoints are available on both implementations:
//
//  1. GET    /                    - Welcome message
//  2. GET    /todos               - Get all todos in creation order
//  3. GET    /todos/{id}          - Get a todo by ID
//  4. POST   /todos               - Create a new todo
//  5. PUT    /todos/{id}          - Update an existing todo
//  6. PATCH  /todos/{id}/complete - Toggle the completion flag of a todo
//  7. DELETE /todos/{id}          - Delete a todo
//  8. GET    /metrics             - Display Prometheus metrics
//
// Run 'todoservice serve' to start an API, 'todoservice loadtest' to drive it
// with synthetic traffic, and 'todoservice history' to review past runs.
package main

import (
	"fmt"
	"os"

	"TodoWebService/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
