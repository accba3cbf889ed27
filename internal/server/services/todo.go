// Package services contains server-side business logic. This file implements
// TodoService: listing plus the create/update/rename/delete lifecycle of todo
// records.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/dbx"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/repomanager"
)

// TodoService implements the todo lifecycle. Every mutating operation first
// checks that the target record exists and reports common.ErrorNotFound when
// it does not, so the API layer can answer 403 uniformly instead of relying
// on the store's own "no rows" shape. The check and the mutation run in one
// transaction to keep the precondition honest under concurrent writers.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService over a database handle and a
// repository manager.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// List returns all todo records in store order.
func (s *TodoService) List(ctx context.Context) ([]*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return result, nil
}

// Create persists a new todo and returns it with its assigned id.
func (s *TodoService) Create(ctx context.Context, todoName string, status models.TodoStatus) (*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)
	todo, err := repo.Create(ctx, todoName, status)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return todo, nil
}

// UpdateStatus sets the status of an existing todo and returns the updated
// record. A missing id yields common.ErrorNotFound and no mutation.
func (s *TodoService) UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error) {
	return s.mutateExisting(ctx, id, func(ctx context.Context, repo todoMutator) (*models.Todo, error) {
		return repo.UpdateStatus(ctx, id, status)
	})
}

// Rename sets the name of an existing todo and returns the updated record.
func (s *TodoService) Rename(ctx context.Context, id string, todoName string) (*models.Todo, error) {
	return s.mutateExisting(ctx, id, func(ctx context.Context, repo todoMutator) (*models.Todo, error) {
		return repo.UpdateName(ctx, id, todoName)
	})
}

// Delete removes an existing todo and returns its prior data.
func (s *TodoService) Delete(ctx context.Context, id string) (*models.Todo, error) {
	return s.mutateExisting(ctx, id, func(ctx context.Context, repo todoMutator) (*models.Todo, error) {
		return repo.Delete(ctx, id)
	})
}

type todoMutator interface {
	UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error)
	UpdateName(ctx context.Context, id string, todoName string) (*models.Todo, error)
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

func (s *TodoService) mutateExisting(ctx context.Context, id string, mutate func(ctx context.Context, repo todoMutator) (*models.Todo, error)) (*models.Todo, error) {
	var result *models.Todo

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Todos(tx)

		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking todo: %w", err)
		}
		if !exists {
			return common.ErrorNotFound
		}

		result, err = mutate(ctx, repo)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
