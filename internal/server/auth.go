package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/paperledger/paperledger/internal/auth/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})

	outcome, ok := authdomain.ClassifyLoginError(err)
	if !ok {
		AbortWithError(c, err)
		return
	}
	s.metrics.RecordLogin(outcome.Status)

	switch outcome.Status {
	case authdomain.OutcomeInvalidCredentials:
		c.JSON(http.StatusUnauthorized, outcome)
	case authdomain.OutcomeError:
		c.JSON(http.StatusInternalServerError, outcome)
	default:
		s.sessions.Set(c, result.RawToken, result.ExpiresAt)
		c.JSON(http.StatusOK, gin.H{
			"status": outcome.Status,
			"user":   result.User,
		})
	}
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.authsvc.Logout(c.Request.Context(), token); err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	session, err := s.authsvc.Authenticate(c.Request.Context(), token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	user, err := s.authsvc.CurrentUser(c.Request.Context(), session.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"expires_at": session.ExpiresAt,
	})
}
