package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// newLogger returns the CLI logger: prefixed with the app name, timestamped
// as "15:04:05.00" and filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// applyLevel sets l to the named level ("debug", "info", "warn", "error").
// Debug is never lowered, so --verbose wins over the config file.
func applyLevel(l *log.Logger, name string) error {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "log_level %q", name)
	}
	if l.GetLevel() == log.DebugLevel {
		return nil
	}
	l.SetLevel(level)
	return nil
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. A nil ctx is treated as context.Background.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
