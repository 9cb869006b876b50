// Package todo holds a minimal in-memory task list used to demonstrate
// programming against a repository interface. Nothing is persisted.
package todo

import "errors"

// ErrNotFound is returned when a task ID does not exist.
var ErrNotFound = errors.New("task not found")

// Task is a single to-do item.
type Task struct {
	ID    int
	Title string
	Done  bool
}

// Repository defines the task storage operations consumers depend on.
type Repository interface {
	Add(title string) Task
	Complete(id int) error
	List() []Task
}
