// Package httpapi exposes the todo and login services over an HTTP/JSON API.
// It is the single boundary where faults are mapped onto the wire status
// codes: 422 with a field-issue list for malformed input, 403 with an empty
// body for mutations of an absent todo id (deliberately not 404, to avoid
// existence leakage), 422 with {"message":"User not found"} for an unknown
// login, and an empty 500 for everything else.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/logging"
	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// TodoService is the todo lifecycle contract the handlers depend on.
type TodoService interface {
	List(ctx context.Context) ([]*models.Todo, error)
	Create(ctx context.Context, todoName string, status models.TodoStatus) (*models.Todo, error)
	UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error)
	Rename(ctx context.Context, id string, todoName string) (*models.Todo, error)
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

// UserService is the login contract the handlers depend on.
type UserService interface {
	Authenticate(ctx context.Context, username string) (*models.User, string, error)
}

type Handler struct {
	todos  TodoService
	users  UserService
	logger logging.Logger
}

func NewHandler(todos TodoService, users UserService, logger logging.Logger) *Handler {
	return &Handler{todos: todos, users: users, logger: logger}
}

// Register mounts all routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/auth/login", h.Login)

	g := e.Group("/todo")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id", h.UpdateStatus)
	g.PUT("/:id", h.Rename)
	g.DELETE("/:id", h.Delete)

	e.GET("/health", h.Health)
}

// Login looks up the user named in the request and, if found, answers with a
// signed session token and the full user record inline. No password is
// checked; the contract is identity-claim-only.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, common.NewValidationError("username", "invalid request body"))
	}
	if req.Username == nil {
		return h.fail(c, common.NewValidationError("username", "username is required"))
	}

	user, token, err := h.users.Authenticate(c.Request().Context(), *req.Username)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{StatusCode: "0000", Token: token, User: *user})
}

// List returns every todo in store order.
func (h *Handler) List(c echo.Context) error {
	result, err := h.todos.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	if result == nil {
		result = []*models.Todo{}
	}
	return c.JSON(http.StatusOK, result)
}

// Create validates the request shape, persists the todo, and returns it with
// its assigned id.
func (h *Handler) Create(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, common.NewValidationError("todoName", "invalid request body"))
	}

	issues := validateTodoName(req.TodoName, nil)
	issues = validateStatus(req.Status, issues)
	if len(issues) > 0 {
		return h.fail(c, &common.ValidationError{Issues: issues})
	}

	todo, err := h.todos.Create(c.Request().Context(), *req.TodoName, models.TodoStatus(*req.Status))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, todo)
}

// UpdateStatus sets the status of the addressed todo.
func (h *Handler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, common.NewValidationError("status", "invalid request body"))
	}

	if issues := validateStatus(req.Status, nil); len(issues) > 0 {
		return h.fail(c, &common.ValidationError{Issues: issues})
	}

	todo, err := h.todos.UpdateStatus(c.Request().Context(), c.Param("id"), models.TodoStatus(*req.Status))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, todo)
}

// Rename sets the name of the addressed todo.
func (h *Handler) Rename(c echo.Context) error {
	var req renameTodoRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, common.NewValidationError("todoName", "invalid request body"))
	}

	if issues := validateTodoName(req.TodoName, nil); len(issues) > 0 {
		return h.fail(c, &common.ValidationError{Issues: issues})
	}

	todo, err := h.todos.Rename(c.Request().Context(), c.Param("id"), *req.TodoName)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, todo)
}

// Delete removes the addressed todo and returns its prior data.
func (h *Handler) Delete(c echo.Context) error {
	todo, err := h.todos.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, todo)
}

// Health answers liveness probes.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// fail maps an error onto the wire contract. Internal detail beyond the
// validation field list never reaches the caller.
func (h *Handler) fail(c echo.Context, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ve.Issues)
	case errors.Is(err, common.ErrorUserNotFound):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "User not found"})
	case errors.Is(err, common.ErrorNotFound):
		return c.NoContent(http.StatusForbidden)
	default:
		h.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err.Error())
		return c.NoContent(http.StatusInternalServerError)
	}
}

func validateTodoName(name *string, issues []common.FieldIssue) []common.FieldIssue {
	if name == nil || *name == "" {
		return append(issues, common.FieldIssue{Path: []string{"todoName"}, Message: "todoName must be a non-empty string"})
	}
	return issues
}

func validateStatus(status *int, issues []common.FieldIssue) []common.FieldIssue {
	if status == nil || !models.TodoStatus(*status).Valid() {
		return append(issues, common.FieldIssue{Path: []string{"status"}, Message: "status must be 0 (pending) or 1 (completed)"})
	}
	return issues
}
