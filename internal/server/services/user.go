package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/auth"
	"github.com/dmitrijs2005/todolist/internal/server/config"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/repomanager"
)

// UserService implements the login flow: look the user up by email and mint
// a session token from the full record. No credential is verified; identity
// is claim-only by contract.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	secretKey   []byte
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		secretKey:   []byte(cfg.SecretKey),
	}
}

// Authenticate looks up the user behind username (an email) and returns the
// record together with a signed session token. An unknown username yields
// common.ErrorUserNotFound.
func (s *UserService) Authenticate(ctx context.Context, username string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUserNotFound
		}
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	token, err := auth.GenerateToken(user, s.secretKey)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}
