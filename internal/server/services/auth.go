// Package services contains the server-side business logic. AuthService
// composes the user repository, the password hasher, and the token minter
// into the three operations the API exposes: Register, Login, and
// ResolveIdentity.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/avelichko/authgate/internal/common"
	"github.com/avelichko/authgate/internal/logging"
	"github.com/avelichko/authgate/internal/server/auth"
	"github.com/avelichko/authgate/internal/server/models"
	"github.com/avelichko/authgate/internal/server/password"
	"github.com/avelichko/authgate/internal/server/repositories/repomanager"
)

// PublicUser is the outward projection of a user record. The password hash
// is not part of it and never will be.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResult is returned by Register and Login: a bearer token plus the
// public view of the account it belongs to.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// AuthService is stateless between calls; every operation is an independent
// transaction against the store, so concurrent requests need no locking.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *password.Hasher
	minter      *auth.TokenMinter
	logger      logging.Logger
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, h *password.Hasher, tm *auth.TokenMinter, l logging.Logger) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		hasher:      h,
		minter:      tm,
		logger:      l.With("module", "auth_service"),
	}
}

// Register creates an account and signs it in. The conflict check and the
// insert are two separate store calls; two concurrent registrations can both
// pass the check, in which case the unique constraints on the users table
// decide the winner and the loser gets the same conflict error.
func (s *AuthService) Register(ctx context.Context, username, email, plaintext string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || plaintext == "" {
		return nil, common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)

	existing, err := repo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		s.logger.Error(ctx, "conflict check failed", "error", err)
		return nil, common.ErrInternal
	}
	if len(existing) > 0 {
		return nil, common.ErrConflict
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrInternal
	}

	user, err := repo.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		s.logger.Error(ctx, "user insert failed", "error", err)
		return nil, common.ErrInternal
	}

	token, err := s.minter.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)

	return &AuthResult{Token: token, User: publicUser(user)}, nil
}

// Login verifies credentials and issues a token. A missing user and a wrong
// password produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || plaintext == "" {
		return nil, common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		// Corrupt stored hash: fatal for this login, not for the process.
		s.logger.Error(ctx, "stored hash unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrInternal
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.minter.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)

	return &AuthResult{Token: token, User: publicUser(user)}, nil
}

// ResolveIdentity turns a bearer token back into the current account record.
// Expired, forged, and undecodable tokens are collapsed into the same
// outward error; the log keeps the distinction. The record is re-read from
// the store rather than trusted from the claims.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*PublicUser, error) {
	if token == "" {
		return nil, common.ErrNoToken
	}

	claims, err := s.minter.Verify(token)
	if err != nil {
		s.logger.Warn(ctx, "token rejected", "reason", err.Error())
		return nil, common.ErrInvalidToken
	}

	id, err := claims.UserID()
	if err != nil {
		s.logger.Warn(ctx, "token subject unparsable")
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	pu := publicUser(user)
	return &pu, nil
}

func publicUser(u *models.User) PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
