package isotodo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// ListenAndServe serves the app on addr until ctx is canceled.
func (a *App) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully. The listener is closed on return.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	return serve(ctx, ln, a.Handler(), func(port int) {
		a.log.Info().Int("port", port).Msgf("Listening on port %d", port)
	})
}

// ServeMetrics serves the Prometheus registry on addr until ctx is canceled.
func (a *App) ServeMetrics(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.MetricsHandler())

	return serve(ctx, ln, mux, func(port int) {
		a.log.Info().Int("port", port).Msg("Prometheus metrics on /metrics")
	})
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, onListen func(port int)) error {
	// Requests inherit ctx so long-lived reload streams end on shutdown.
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	port := 0
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	onListen(port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
