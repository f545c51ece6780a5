// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey is the context key of the request-scoped logger.
type logCtxKey struct{}

// maxLoggedBody caps request and response bodies written at debug level.
const maxLoggedBody = 4 << 10

var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// NewStructuredLogger logs one line per request with a logger carrying the
// chi request ID, and stores that logger in the request context for GetLogger.
// At debug level it also logs headers and JSON bodies.
func NewStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(slog.String("request_id", middleware.GetReqID(r.Context())))
			ctx := WithLogger(r.Context(), reqLogger)
			r = r.WithContext(ctx)

			debug := logger.Enabled(ctx, slog.LevelDebug)
			var reqBody []byte
			if debug && r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
				reqBody, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), r.Body))
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var respBody bytes.Buffer
			if debug {
				ww.Tee(&limitedBuffer{buf: &respBody, limit: maxLoggedBody})
			}

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				level := slog.LevelInfo
				if status >= 500 {
					level = slog.LevelError
				} else if status >= 400 {
					level = slog.LevelWarn
				}
				latency := time.Since(start)
				reqLogger.LogAttrs(ctx, level, "Request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Int("bytes_out", ww.BytesWritten()),
					slog.Float64("latency_ms", float64(latency.Nanoseconds())/1e6),
				)

				if debug {
					reqLogger.Debug("Request detail",
						"headers", formatHeaders(r.Header),
						"body", string(reqBody),
					)
					body := respBody.String()
					if !isJSON(ww.Header().Get("Content-Type")) {
						body = ""
					}
					reqLogger.Debug("Response detail",
						"status", status,
						"headers", formatHeaders(ww.Header()),
						"body", body,
					)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger returns the request-scoped logger, or slog.Default outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "application/json")
}

// limitedBuffer keeps the first limit bytes written to it and discards the rest.
type limitedBuffer struct {
	buf   *bytes.Buffer
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}
