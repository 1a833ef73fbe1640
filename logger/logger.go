// Package logger wraps logrus with a process-wide logger and request id
// propagation through context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields
type Fields = logrus.Fields

type contextKey string

const RequestIDKey contextKey = "request_id"

const requestIDField = "request_id"

// L is the process-wide logger.
var L = logrus.New()

// IsDevelopment reports whether env names a development environment.
func IsDevelopment(env string) bool {
	env = strings.ToLower(env)
	return env == "" || env == "development" || env == "dev"
}

// Setup configures L. Development gets a readable text format, anything
// else gets JSON for log shipping.
func Setup(level, env string) {
	SetupWithOutput(level, env, os.Stdout)
}

func SetupWithOutput(level, env string, out io.Writer) {
	L.SetOutput(out)

	if IsDevelopment(env) {
		L.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			PadLevelText:  true,
		})
	} else {
		L.SetFormatter(&logrus.JSONFormatter{})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		L.WithField("log_level", level).Warn("unknown log level, falling back to info")
	}
	L.SetLevel(parsed)
}

// WithRequestID stores id in ctx, generating one when id is empty.
func WithRequestID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, id), id
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// ForContext returns an entry carrying the request id of ctx, if any.
func ForContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(L)
	if id := GetRequestID(ctx); id != "" {
		return entry.WithField(requestIDField, id)
	}
	return entry
}
