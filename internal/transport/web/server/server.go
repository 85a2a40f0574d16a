package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jbeshir/set-ranker/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	var listener net.Listener
	if s.TLSDisabled {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.TLSDisabledPort))
		if err != nil {
			return fmt.Errorf("listening on port %d: %w", s.TLSDisabledPort, err)
		}
		listener = l
	} else {
		listener = autocert.NewListener(s.AutocertHostnames...)
	}

	srv := &http.Server{
		Handler:           s.withLogger(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WarnContext(ctx, "http server shutdown incomplete", "error", err)
		}
	}()

	logger.InfoContext(ctx, "http server listening",
		"address", listener.Addr().String(),
		"tls_disabled", s.TLSDisabled,
	)
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// withLogger makes the process logger available to every request.
func (s *Server) withLogger(ctx context.Context) http.Handler {
	logger := domain.LoggerFromContext(ctx)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With("method", r.Method, "path", r.URL.Path)
		s.Router.ServeHTTP(w, r.WithContext(domain.ContextWithLogger(r.Context(), reqLogger)))
	})
}
