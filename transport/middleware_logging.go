package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	utilsContext "github.com/muhammadheryan/clinic-companion/utils/context"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"go.uber.org/zap"
)

const bridgeClientHeader = "X-Bridge-Client"

// LoggingMiddleware logs every bridge request with the caller named in X-Bridge-Client.
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			ctx := r.Context()
			if name := strings.TrimSpace(r.Header.Get(bridgeClientHeader)); name != "" {
				ctx = utilsContext.WithBridgeClient(ctx, name)
			}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			client, _ := utilsContext.GetBridgeClient(ctx)
			duration := time.Since(start)
			logger.Info(
				"bridge request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("client", client),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", duration),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
