package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/dbx"
	"github.com/dmitrijs2005/todolist/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Todo, error) {
	query :=
		`SELECT id, todo_name, status, created_at FROM todos
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.TodoName, &todo.Status, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	query :=
		`SELECT count(*) FROM todos
		 WHERE id = $1
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, todoName string, status models.TodoStatus) (*models.Todo, error) {
	query :=
		`INSERT INTO todos (id, todo_name, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, todo_name, status, created_at
		 `

	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), todoName, status).
		Scan(&todo.ID, &todo.TodoName, &todo.Status, &todo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error) {
	query :=
		`UPDATE todos SET status = $2
		 WHERE id = $1
		 RETURNING id, todo_name, status, created_at
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, status))
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id string, todoName string) (*models.Todo, error) {
	query :=
		`UPDATE todos SET todo_name = $2
		 WHERE id = $1
		 RETURNING id, todo_name, status, created_at
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, todoName))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Todo, error) {
	query :=
		`DELETE FROM todos
		 WHERE id = $1
		 RETURNING id, todo_name, status, created_at
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Todo, error) {
	todo := &models.Todo{}
	err := row.Scan(&todo.ID, &todo.TodoName, &todo.Status, &todo.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}
