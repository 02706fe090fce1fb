// Package types defines the Task entity, the TaskStore interface, the store
// Config, and the standard errors shared by the todo storage and CLI layers.
package types

import "iter"

// Task is a single to-do item.
type Task struct {
	ID   int64  `json:"id"`   // Assigned by the store on creation; never reused.
	Text string `json:"text"` // Task content.
	Done bool   `json:"done"` // Completion flag; only ever moves false -> true.
}

// TaskStore is the persistence contract for the task collection.
//
// Operations addressed by id (EditTask, MarkDone, RemoveTask) treat a missing
// id as a no-op: they return zero rows affected and a nil error.
type TaskStore interface {
	// Initialize creates the task table if it does not already exist.
	// Safe to call any number of times; existing rows are preserved.
	Initialize() error

	// AddTasks inserts one task per text with Done=false and returns the
	// assigned ids in order. Inserts are independent: when one fails the
	// earlier ones stay committed and their ids are returned with the error.
	AddTasks(texts []string) ([]int64, error)

	// EditTask replaces the text of the task with the given id.
	EditTask(id int64, text string) (int64, error)

	// ListTasks returns every task in ascending id order. The sequence is
	// lazy and re-queries the store each time it is ranged over.
	ListTasks() iter.Seq2[Task, error]

	// MarkDone sets Done=true on each listed task.
	MarkDone(ids []int64) (int64, error)

	// RemoveTask deletes the task with the given id.
	RemoveTask(id int64) (int64, error)

	// Close releases the underlying storage handle. Idempotent.
	Close() error
}
