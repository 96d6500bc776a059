package observe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
)

// DefaultValueWidth bounds how many terminal cells a logged value may take.
const DefaultValueWidth = 64

type logConfig struct {
	level slog.Level
	width int
	msg   string
}

// LogOption configures LogListener.
type LogOption func(*logConfig)

// WithLevel sets the level change records are logged at.
func WithLevel(level slog.Level) LogOption {
	return func(c *logConfig) { c.level = level }
}

// WithValueWidth sets the truncation width for old and new values.
// Zero or less disables truncation.
func WithValueWidth(width int) LogOption {
	return func(c *logConfig) { c.width = width }
}

// WithMessage sets the log message.
func WithMessage(msg string) LogOption {
	return func(c *logConfig) { c.msg = msg }
}

// LogListener returns a Listener that logs every change to logger.
// A nil logger uses slog.Default.
func LogListener(logger *slog.Logger, opts ...LogOption) Listener {
	cfg := logConfig{level: slog.LevelInfo, width: DefaultValueWidth, msg: "attribute changed"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(inst *Instance, field string, old, new any) error {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.LogAttrs(context.Background(), cfg.level, cfg.msg,
			slog.String("type", inst.Type().Name()),
			slog.String("field", field),
			slog.String("old", FormatValue(old, cfg.width)),
			slog.String("new", FormatValue(new, cfg.width)),
		)
		return nil
	}
}

// FormatValue renders v for display, truncated to width terminal cells.
func FormatValue(v any, width int) string {
	var s string
	switch val := v.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = fmt.Sprintf("%q", val)
	default:
		s = fmt.Sprint(val)
	}
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
