package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
	"github.com/pets-paws/pets-paws-backend/internal/repository/ports"
	"github.com/pets-paws/pets-paws-backend/internal/util"
)

var (
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("user_type must be NGO or Adopter")

	// ErrInvalidSession covers every resolution failure: unknown token,
	// expired token, and sessions whose user no longer exists. Callers get
	// no finer detail.
	ErrInvalidSession = errors.New("invalid or expired token")
)

const (
	ngoRedirectURL     = "/ngo/dashboard"
	defaultRedirectURL = "/"
)

type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
}

type AuthResult struct {
	Token       string
	User        *domain.User
	RedirectURL string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Signup registers a new NGO or Adopter account and logs it in. Duplicate
// emails are detected through the store's unique constraint rather than a
// read-then-write check.
func (s *AuthService) Signup(ctx context.Context, email, password, name string, role domain.Role) (*AuthResult, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, normalizeEmail(email), hash, salt, strings.TrimSpace(name), role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:       token,
		User:        user,
		RedirectURL: redirectURLFor(user.Role),
	}, nil
}

// Login verifies an email/password pair and issues a fresh session. Unknown
// email and wrong password collapse into the same error; existing sessions
// for the user stay alive.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:       token,
		User:        user,
		RedirectURL: redirectURLFor(user.Role),
	}, nil
}

// Authenticate resolves a bearer token to its owning user. Two store reads,
// no caching, no expiry extension.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.FindValid(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// Logout deletes the session row for token. The token does not need to
// resolve to a live session; removing an absent or expired row succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) issueSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := util.NewSessionToken()
	if err != nil {
		return "", err
	}
	expiresAt := time.Now().Add(s.sessionTTL)
	if _, err := s.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func redirectURLFor(role domain.Role) string {
	if role == domain.RoleNGO {
		return ngoRedirectURL
	}
	return defaultRedirectURL
}
