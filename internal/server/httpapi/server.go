// Package httpapi exposes the authentication service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avelichko/authgate/internal/logging"
	"github.com/avelichko/authgate/internal/server/services"
)

// Authenticator is the slice of the service layer the handlers need.
type Authenticator interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	ResolveIdentity(ctx context.Context, token string) (*services.PublicUser, error)
}

// Server serves the auth API on a plain net/http server with a gin router.
type Server struct {
	address string
	logger  logging.Logger
	auth    Authenticator
	origins []string
}

func NewServer(address string, l logging.Logger, auth Authenticator, allowedOrigins []string) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		auth:    auth,
		origins: allowedOrigins,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(s.origins) == 1 && s.origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, tokenHeader)
	r.Use(cors.New(corsCfg))

	r.GET("/health", s.health)

	api := r.Group("/api/auth")
	api.GET("/", s.status)
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.GET("/me", s.me)

	return r
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
