// Package controller owns the client's in-memory todo list and drives the
// synchronization contract with the server: every successful mutation is
// followed by one full list reload, and the view never keeps speculative
// local edits across a reload.
package controller

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/todolist/internal/client/models"
	"github.com/dmitrijs2005/todolist/internal/client/session"
	"github.com/dmitrijs2005/todolist/internal/common"
)

// Gateway is the verb dispatcher the controller talks through.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, payload any, out any) error
	Put(ctx context.Context, path string, payload any, out any) error
	Patch(ctx context.Context, path string, payload any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type createPayload struct {
	TodoName string        `json:"todoName"`
	Status   models.Status `json:"status"`
}

type statusPayload struct {
	Status models.Status `json:"status"`
}

type renamePayload struct {
	TodoName string `json:"todoName"`
}

// Controller is the todo list state machine. Not safe for concurrent use;
// the TUI drives it from a single goroutine.
type Controller struct {
	gw      Gateway
	sess    *session.Session
	list    []models.Todo
	loading map[string]bool
	reloads int
}

func New(gw Gateway, sess *session.Session) *Controller {
	return &Controller{
		gw:      gw,
		sess:    sess,
		loading: make(map[string]bool),
	}
}

// Start gates on session state: without a token the caller must route to the
// login flow, otherwise the first Refresh runs.
func (c *Controller) Start(ctx context.Context) error {
	if !c.sess.Authenticated() {
		return common.ErrorNotAuthenticated
	}
	return c.Refresh(ctx)
}

// Refresh reloads the full list from the server. A non-empty result replaces
// the local list with the result reversed and then stably sorted by ascending
// status, so pending items surface first and newer items lead within equal
// status. An empty result leaves a populated view unchanged; callers rely on
// this and must not treat it as a cleared list.
func (c *Controller) Refresh(ctx context.Context) error {
	c.reloads++

	var fetched []models.Todo
	if err := c.gw.Get(ctx, "/todo", &fetched); err != nil {
		return err
	}

	if len(fetched) == 0 {
		return nil
	}

	next := make([]models.Todo, len(fetched))
	for i, t := range fetched {
		next[len(fetched)-1-i] = t
	}
	sort.SliceStable(next, func(i, j int) bool { return next[i].Status < next[j].Status })

	c.list = next
	return nil
}

// Create adds a new pending item and, on success, reloads the list.
func (c *Controller) Create(ctx context.Context, todoName string) error {
	var created models.Todo
	if err := c.gw.Post(ctx, "/todo", createPayload{TodoName: todoName, Status: models.StatusPending}, &created); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Toggle marks the item completed or pending. The item's loading flag is set
// for the duration of the call and cleared unconditionally, even on failure.
func (c *Controller) Toggle(ctx context.Context, item models.Todo, checked bool) error {
	c.loading[item.ID] = true
	defer delete(c.loading, item.ID)

	status := models.StatusPending
	if checked {
		status = models.StatusCompleted
	}

	var updated models.Todo
	if err := c.gw.Patch(ctx, "/todo/"+item.ID, statusPayload{Status: status}, &updated); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Rename changes the item's name, with the same loading discipline as Toggle.
func (c *Controller) Rename(ctx context.Context, item models.Todo, todoName string) error {
	c.loading[item.ID] = true
	defer delete(c.loading, item.ID)

	var updated models.Todo
	if err := c.gw.Put(ctx, "/todo/"+item.ID, renamePayload{TodoName: todoName}, &updated); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Remove deletes the item, with the same loading discipline as Toggle.
func (c *Controller) Remove(ctx context.Context, item models.Todo) error {
	c.loading[item.ID] = true
	defer delete(c.loading, item.ID)

	var deleted models.Todo
	if err := c.gw.Delete(ctx, "/todo/"+item.ID, &deleted); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// List returns the current view state.
func (c *Controller) List() []models.Todo {
	return c.list
}

// Loading reports whether a mutation is in flight for the given item id.
func (c *Controller) Loading(id string) bool {
	return c.loading[id]
}

// Reloads returns how many times Refresh has run; tests use it to assert the
// reload-after-mutation contract.
func (c *Controller) Reloads() int {
	return c.reloads
}
