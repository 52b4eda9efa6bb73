package envkit

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for slog based loggers. The
// returned function yields an env attribute when the context carries a
// deployment tag.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if tag := FromContext(ctx); tag != "" {
			return slog.String("env", tag.String()), true
		}
		return slog.Attr{}, false
	}
}
