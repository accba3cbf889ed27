// Package models holds the client-side view of the wire records.
package models

// Status enumerates the completion state of a todo item.
type Status int

const (
	StatusPending   Status = 0
	StatusCompleted Status = 1
)

// Todo mirrors the todo record as exchanged with the server.
type Todo struct {
	ID       string `json:"id"`
	TodoName string `json:"todoName"`
	Status   Status `json:"status"`
}

// Done reports whether the item is completed.
func (t Todo) Done() bool {
	return t.Status == StatusCompleted
}
