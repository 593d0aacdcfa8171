package middleware

import (
	"fmt"
	"net/http"

	"karaoke/config"
	"karaoke/infras/otel"
	"karaoke/shared/cache"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// statusWriter captures the status code written by downstream handlers so the
// span can record it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.method":     r.Method,
				"http.user_agent": a.getUA(r),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(ctx))

			scope.SetAttributes(map[string]any{
				"http.status_code": sw.status,
			})
		})
	}
}
