// Package models holds the server-side domain records persisted in Postgres.
package models

import "time"

// TodoStatus enumerates the completion state of a todo item.
type TodoStatus int

const (
	StatusPending   TodoStatus = 0
	StatusCompleted TodoStatus = 1
)

// Valid reports whether s is one of the enumerated status values.
func (s TodoStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is a single task record. ID is assigned by the store on creation and
// never changes afterwards. CreatedAt is kept for ordering and is not part
// of the JSON contract.
type Todo struct {
	ID        string     `json:"id"`
	TodoName  string     `json:"todoName"`
	Status    TodoStatus `json:"status"`
	CreatedAt time.Time  `json:"-"`
}
