package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	VerifyCredentials(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
	CurrentUser(ctx context.Context, userID snowflake.ID) (*User, error)
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	User      *User
	RawToken  string
	ExpiresAt time.Time
	SessionID snowflake.ID
}

// Login outcome statuses surfaced to the client.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// LoginOutcome is the discriminated result of a login attempt.
type LoginOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ClassifyLoginError maps auth errors onto client-facing outcomes.
// The second return is false when err is outside the auth family and
// must be propagated instead.
func ClassifyLoginError(err error) (LoginOutcome, bool) {
	if err == nil {
		return LoginOutcome{Status: OutcomeSuccess}, true
	}
	if !IsAuthError(err) {
		return LoginOutcome{}, false
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return LoginOutcome{Status: OutcomeInvalidCredentials, Message: "Invalid credentials."}, true
	}
	return LoginOutcome{Status: OutcomeError, Message: "Something went wrong."}, true
}
