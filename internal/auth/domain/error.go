package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrFetchUser          = errors.New("failed to fetch user")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrInvalidSession     = errors.New("invalid session")
)

// IsAuthError reports whether err belongs to the auth error family.
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrInvalidCredentials,
		ErrUserNotFound,
		ErrFetchUser,
		ErrSessionNotFound,
		ErrSessionExpired,
		ErrSessionRevoked,
		ErrInvalidSession,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
