package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type RequestObserver interface {
	ObserveRequest(handler string, status int)
}

type labelKey struct{}

// AccessLog attaches logger to each request and logs one line per response.
// Handlers wrapped with Label name the route group reported to observer.
func AccessLog(logger zerolog.Logger, observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		logged := hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", d).
				Msg("request")
			if observer != nil {
				observer.ObserveRequest(handlerLabel(r), status)
			}
		})(next)

		labeled := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			label := ""
			r = r.WithContext(context.WithValue(r.Context(), labelKey{}, &label))
			logged.ServeHTTP(w, r)
		})

		return hlog.NewHandler(logger)(labeled)
	}
}

func Label(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l, ok := r.Context().Value(labelKey{}).(*string); ok {
			*l = name
		}
		next.ServeHTTP(w, r)
	})
}

func handlerLabel(r *http.Request) string {
	if l, ok := r.Context().Value(labelKey{}).(*string); ok && *l != "" {
		return *l
	}
	return "unknown"
}
