package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelichko/authgate/internal/common"
)

// tokenHeader carries the bearer token on authenticated requests.
const tokenHeader = "x-auth-token"

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	res, err := s.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	res, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) me(c *gin.Context) {
	token := c.GetHeader(tokenHeader)

	user, err := s.auth.ResolveIdentity(c.Request.Context(), token)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Auth API is running"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeError maps the service error set to statuses and short messages.
// Everything unrecognized is logged and answered with an opaque 500.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "all fields are required"})
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": "username or email already in use"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
	case errors.Is(err, common.ErrNoToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "no token, authorization denied"})
	case errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
	default:
		s.logger.Error(c.Request.Context(), "unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
	}
}
