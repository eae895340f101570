package logging

import (
	"maps"
	"strings"

	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

const (
	fieldPath   = "path"
	fieldLocale = "locale"
	fieldOp     = "op"
)

// WithFields attaches fields when logger implements interfaces.FieldsLogger.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(maps.Clone(fields))
	}
	return logger
}

// WithRouteContext annotates logger with the path, locale and operation being
// handled. Blank values are skipped.
func WithRouteContext(logger interfaces.Logger, path, locale, op string) interfaces.Logger {
	fields := map[string]any{}
	if path != "" {
		fields[fieldPath] = path
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(op); trimmed != "" {
		fields[fieldOp] = trimmed
	}
	return WithFields(logger, fields)
}
