// Package models contains the data models for the application to be used in request handling.
package models

// Todo represents a single todo item managed by the service.
// Todo has the following properties:
// - Id: The unique identifier of the todo, supplied by the client and immutable after creation.
// - Item: The text description of the todo.
// - Completed: Whether the todo has been completed. Defaults to false at creation.
type Todo struct {
	Id        int    `json:"id" validate:"required"`
	Item      string `json:"item" validate:"required,max=255,itemValidator"`
	Completed bool   `json:"completed"`
}
