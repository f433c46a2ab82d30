package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys contains attribute keys that always hold personal data.
var sensitiveKeys = map[string]bool{
	"contact":   true,
	"email":     true,
	"e-mail":    true,
	"mail":      true,
	"phone":     true,
	"telephone": true,
	"telefon":   true,
	"mobile":    true,
	"mobil":     true,
}

// sensitiveKeywords are matched as substrings of lower-cased keys,
// so "contact_email" or "site.phone" are redacted too.
var sensitiveKeywords = []string{"contact", "kontakt", "email", "phone", "telefon"}

// sensitivePatterns contains regex patterns that indicate personal values.
// Values matching these patterns are redacted regardless of key name.
var sensitivePatterns = []*regexp.Regexp{
	// E-mail addresses
	regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),

	// International phone numbers: +46 8 123 45 67, 0046-8-1234567
	regexp.MustCompile(`^(\+|00)\d[\d ()-]{6,}\d$`),

	// Swedish national phone numbers: 08-123 45 67, 070-123 45 67
	regexp.MustCompile(`^0\d{1,3}[- ]?\d{2,3}[ -]?\d{2}[ -]?\d{2}$`),
}

// MaskValue is the string used to replace redacted values.
const MaskValue = "***REDACTED***"

// RedactHandler wraps an slog.Handler to mask personal data.
// It intercepts log records and replaces attribute values that match
// sensitive key names or value patterns before passing them to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it keeps the standard slog API at every call site and works with
// both the text and the JSON handler.
type RedactHandler struct {
	// handler is the underlying slog handler that receives redacted records.
	handler slog.Handler
}

// NewRedactHandler creates a new RedactHandler wrapping the given handler.
// If handler is nil, the returned RedactHandler will use slog.Default().Handler().
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it to the underlying handler.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are redacted before being added.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr redacts a single attribute, recursively handling groups.
func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if isSensitiveKey(a.Key) {
		// An empty contact carries nothing to hide and is useful to see
		if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
			return a
		}
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString && isSensitiveValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// isSensitiveKey checks the key against the exact and substring lists.
func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if sensitiveKeys[key] {
		return true
	}
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isSensitiveValue checks if a value matches sensitive patterns.
func isSensitiveValue(value string) bool {
	value = strings.TrimSpace(value)
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewLogger creates a new slog.Logger writing text records through a
// RedactHandler.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a new slog.Logger with redaction that outputs JSON
// records. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
