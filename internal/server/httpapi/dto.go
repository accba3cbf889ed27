package httpapi

import "github.com/dmitrijs2005/todolist/internal/server/models"

// Request DTOs bound from JSON bodies. Fields are pointers so a missing
// field can be told apart from a zero value during validation.

type loginRequest struct {
	Username *string `json:"username"`
}

type createTodoRequest struct {
	TodoName *string `json:"todoName"`
	Status   *int    `json:"status"`
}

type updateStatusRequest struct {
	Status *int `json:"status"`
}

type renameTodoRequest struct {
	TodoName *string `json:"todoName"`
}

// loginResponse inlines the user fields next to the status marker and token,
// matching the wire contract of the login endpoint.
type loginResponse struct {
	StatusCode string `json:"statusCode"`
	Token      string `json:"token"`
	models.User
}
