package users

import (
	"context"

	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// Repository is the read-only persistence contract for user records. Users
// are provisioned out of band; the application only ever looks them up.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
