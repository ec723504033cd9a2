package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/pkg/ctxutil"
)

// NewLogger builds the process logger and installs it as the slog default.
// "json" is the production format; "text" adds source locations.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(slog.String("app", "incident-desk"))
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(requestIDHandler{h})
}

// parseLevel accepts anything slog.Level understands ("warn", "DEBUG-2").
// Unknown values fall back to info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

var secretKeys = map[string]bool{
	"password":      true,
	"authorization": true,
	"token":         true,
	"access_token":  true,
	"api_key":       true,
}

// redact masks credentials and collapses inline data URLs so a logged
// submission never carries the whole image.
func redact(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	if a.Value.Kind() == slog.KindString {
		if v := a.Value.String(); strings.HasPrefix(v, "data:") && len(v) > 64 {
			mediaType, _, _ := strings.Cut(strings.TrimPrefix(v, "data:"), ",")
			return slog.String(a.Key, fmt.Sprintf("data:%s,[%d bytes]", mediaType, len(v)))
		}
	}
	return a
}

// requestIDHandler stamps records logged with a request context, unless
// the caller already set request_id.
type requestIDHandler struct {
	slog.Handler
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" && !hasAttr(r, "request_id") {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{h.Handler.WithGroup(name)}
}
