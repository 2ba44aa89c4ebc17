package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/paperledger/paperledger/internal/auth/domain"
	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	dashboarddomain "github.com/paperledger/paperledger/internal/dashboard/domain"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	revenuedomain "github.com/paperledger/paperledger/internal/revenue/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid request",
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrNotFound),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isOperationError(err):
		return http.StatusInternalServerError, errorPayload{
			Type:    "operation_failed",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// isOperationError matches the operation-named sentinels whose messages
// are safe to surface.
func isOperationError(err error) bool {
	for _, target := range []error{
		revenuedomain.ErrFetchRevenue,
		invoicedomain.ErrFetchLatest,
		invoicedomain.ErrFetchList,
		invoicedomain.ErrFetchPages,
		invoicedomain.ErrFetch,
		invoicedomain.ErrCreate,
		invoicedomain.ErrUpdate,
		invoicedomain.ErrDelete,
		customerdomain.ErrFetchAll,
		customerdomain.ErrFetchTable,
		dashboarddomain.ErrFetchCardData,
		authdomain.ErrFetchUser,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
