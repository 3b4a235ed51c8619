// Package httpapi exposes the auth core over HTTP. Handlers decode the
// pkg/api payloads, call the services, and map sentinel errors to status
// codes; everything else (rate limiting, API docs) lives outside this
// server.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	accounts *services.AccountService
	sessions *services.SessionService
	secret   []byte
}

func NewServer(address string, l logging.Logger, as *services.AccountService, ss *services.SessionService, secretKey string) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: as,
		sessions: ss,
		secret:   []byte(secretKey),
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth", s.handleAccess)
	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.Handle("POST /api/v1/auth/refresh", s.expiredAccessMiddleware(http.HandlerFunc(s.handleRefresh)))
	mux.HandleFunc("POST /api/v1/auth/resetpassword", s.handleResetPassword)
	mux.HandleFunc("POST /api/v1/auth/validatecode", s.handleValidateCode)
	mux.HandleFunc("PUT /api/v1/auth/changepassword", s.handleChangePassword)

	return s.loggingMiddleware(mux)
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
