// Package services contains client-side flows that sit between the gateway
// and the UI. This file implements the login/logout flow.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todolist/internal/client/session"
	"github.com/dmitrijs2005/todolist/internal/common"
)

// Gateway is the subset of the HTTP gateway the auth flow needs.
type Gateway interface {
	Post(ctx context.Context, path string, payload any, out any) error
}

type loginRequest struct {
	Username string `json:"username"`
}

type loginResponse struct {
	StatusCode string `json:"statusCode"`
	Message    string `json:"message"`
	Token      string `json:"token"`
}

// AuthService performs the login handshake and owns the session token
// lifecycle.
type AuthService struct {
	gw   Gateway
	sess *session.Session
}

func NewAuthService(gw Gateway, sess *session.Session) *AuthService {
	return &AuthService{gw: gw, sess: sess}
}

// Login sends the username and stores the returned token in the session.
// The server answers 422 {"message":"User not found"} for an unknown user;
// that body decodes fine, so success is recognized by the "0000" marker.
func (s *AuthService) Login(ctx context.Context, username string) error {
	var resp loginResponse
	if err := s.gw.Post(ctx, "/auth/login", loginRequest{Username: username}, &resp); err != nil {
		return err
	}

	if resp.StatusCode != "0000" || resp.Token == "" {
		if resp.Message != "" {
			return fmt.Errorf("login failed: %s: %w", resp.Message, common.ErrorUserNotFound)
		}
		return common.ErrorNotAuthenticated
	}

	s.sess.SetToken(resp.Token)
	return nil
}

// Logout clears the session token.
func (s *AuthService) Logout() {
	s.sess.Clear()
}
