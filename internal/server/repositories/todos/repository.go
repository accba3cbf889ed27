package todos

import (
	"context"

	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// Repository is the persistence contract for todo records.
//
// Mutating methods operate unconditionally; existence preconditions are the
// caller's responsibility (see services.TodoService, which checks Exists
// before every mutation).
type Repository interface {
	List(ctx context.Context) ([]*models.Todo, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, todoName string, status models.TodoStatus) (*models.Todo, error)
	UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error)
	UpdateName(ctx context.Context, id string, todoName string) (*models.Todo, error)
	// Delete removes the record and returns its prior data.
	Delete(ctx context.Context, id string) (*models.Todo, error)
}
