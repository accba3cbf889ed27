package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/logging"
	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// --- fakes ---

type fakeTodoService struct {
	listOut []*models.Todo
	listErr error

	createOut *models.Todo
	createErr error

	mutateOut *models.Todo
	mutateErr error

	lastID     string
	lastName   string
	lastStatus models.TodoStatus
}

func (f *fakeTodoService) List(ctx context.Context) ([]*models.Todo, error) {
	return f.listOut, f.listErr
}

func (f *fakeTodoService) Create(ctx context.Context, todoName string, status models.TodoStatus) (*models.Todo, error) {
	f.lastName, f.lastStatus = todoName, status
	return f.createOut, f.createErr
}

func (f *fakeTodoService) UpdateStatus(ctx context.Context, id string, status models.TodoStatus) (*models.Todo, error) {
	f.lastID, f.lastStatus = id, status
	return f.mutateOut, f.mutateErr
}

func (f *fakeTodoService) Rename(ctx context.Context, id string, todoName string) (*models.Todo, error) {
	f.lastID, f.lastName = id, todoName
	return f.mutateOut, f.mutateErr
}

func (f *fakeTodoService) Delete(ctx context.Context, id string) (*models.Todo, error) {
	f.lastID = id
	return f.mutateOut, f.mutateErr
}

type fakeUserService struct {
	user  *models.User
	token string
	err   error
}

func (f *fakeUserService) Authenticate(ctx context.Context, username string) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

func newTestServer(todos *fakeTodoService, users *fakeUserService) *echo.Echo {
	e := echo.New()
	h := NewHandler(todos, users, logging.NewJSONLogger())
	h.Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// --- login ---

func TestLogin_UserNotFound(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{err: common.ErrorUserNotFound})

	rec := doJSON(t, e, http.MethodPost, "/auth/login", `{"username":"nobody@example.com"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestLogin_Success(t *testing.T) {
	users := &fakeUserService{
		user:  &models.User{ID: "u1", Email: "demo@example.com", Name: "Demo User"},
		token: "signed-token",
	}
	e := newTestServer(&fakeTodoService{}, users)

	rec := doJSON(t, e, http.MethodPost, "/auth/login", `{"username":"demo@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0000", body["statusCode"])
	assert.Equal(t, "signed-token", body["token"])
	// the user fields are spread inline next to the marker and token
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "demo@example.com", body["email"])
	assert.Equal(t, "Demo User", body["name"])
}

func TestLogin_MissingUsername(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPost, "/auth/login", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")
}

// --- todo CRUD ---

func TestListTodos_OK(t *testing.T) {
	todos := &fakeTodoService{listOut: []*models.Todo{
		{ID: "a", TodoName: "one", Status: models.StatusPending},
		{ID: "b", TodoName: "two", Status: models.StatusCompleted},
	}}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodGet, "/todo", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "one", body[0].TodoName)
}

func TestListTodos_StoreError(t *testing.T) {
	todos := &fakeTodoService{listErr: common.ErrorInternal}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodGet, "/todo", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateTodo_EchoesInput(t *testing.T) {
	todos := &fakeTodoService{createOut: &models.Todo{ID: "fresh", TodoName: "buy milk", Status: models.StatusPending}}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPost, "/todo", `{"todoName":"buy milk","status":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fresh", body.ID)
	assert.Equal(t, "buy milk", body.TodoName)
	assert.Equal(t, models.StatusPending, body.Status)
	assert.Equal(t, "buy milk", todos.lastName)
}

func TestCreateTodo_EmptyNameRejected(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPost, "/todo", `{"todoName":"","status":0}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var issues []common.FieldIssue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"todoName"}, issues[0].Path)
}

func TestCreateTodo_BadStatusRejected(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPost, "/todo", `{"todoName":"x","status":7}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")
}

func TestUpdateStatus_TogglesExisting(t *testing.T) {
	todos := &fakeTodoService{mutateOut: &models.Todo{ID: "t1", TodoName: "buy milk", Status: models.StatusCompleted}}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPatch, "/todo/t1", `{"status":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "t1", body.ID)
	assert.Equal(t, models.StatusCompleted, body.Status)
	assert.Equal(t, "t1", todos.lastID)
}

func TestUpdateStatus_AbsentIDIsForbidden(t *testing.T) {
	todos := &fakeTodoService{mutateErr: common.ErrorNotFound}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPatch, "/todo/absent", `{"status":1}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRename_AbsentIDIsForbidden(t *testing.T) {
	todos := &fakeTodoService{mutateErr: common.ErrorNotFound}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPut, "/todo/absent", `{"todoName":"new"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRename_EmptyNameRejected(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{})

	rec := doJSON(t, e, http.MethodPut, "/todo/t1", `{"todoName":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDelete_ReturnsPriorData(t *testing.T) {
	todos := &fakeTodoService{mutateOut: &models.Todo{ID: "t1", TodoName: "old", Status: models.StatusPending}}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodDelete, "/todo/t1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "old", body.TodoName)
}

func TestDelete_AbsentIDIsForbidden(t *testing.T) {
	todos := &fakeTodoService{mutateErr: common.ErrorNotFound}
	e := newTestServer(todos, &fakeUserService{})

	rec := doJSON(t, e, http.MethodDelete, "/todo/absent", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealth(t *testing.T) {
	e := newTestServer(&fakeTodoService{}, &fakeUserService{})

	rec := doJSON(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
