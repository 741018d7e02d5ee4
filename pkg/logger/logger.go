package logger

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config selects level, handler format and output of a Logger.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	Output      io.Writer
	Component   string
	Environment string
}

type Logger struct {
	*slog.Logger
}

func New(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	if config.Format == "text" {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	l := slog.New(handler)
	if config.Component != "" {
		l = l.With("component", config.Component)
	}
	if config.Environment != "" {
		l = l.With("environment", config.Environment)
	}
	return &Logger{Logger: l}
}

// Discard is a logger that drops everything. Used by tests.
func Discard() *Logger {
	return New(Config{Output: io.Discard})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}

// HTTPMiddleware logs one line per request with status and duration.
func (l *Logger) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		args := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", clientIP(r),
			"status_code", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case rw.statusCode >= 500:
			l.Error("HTTP request completed", args...)
		case rw.statusCode >= 400:
			l.Warn("HTTP request completed", args...)
		default:
			l.Info("HTTP request completed", args...)
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
