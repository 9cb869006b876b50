package todo

import (
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository implementation.
type MemoryRepository struct {
	mu      sync.RWMutex
	tasks   map[int]Task
	counter int
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[int]Task)}
}

// Add stores a new task and returns it with its assigned ID.
func (r *MemoryRepository) Add(title string) Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	task := Task{ID: r.counter, Title: title}
	r.tasks[task.ID] = task
	return task
}

// Complete marks a task as done.
func (r *MemoryRepository) Complete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Done = true
	r.tasks[id] = task
	return nil
}

// List returns all tasks in insertion order.
func (r *MemoryRepository) List() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
