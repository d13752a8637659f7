package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for audit run identifiers.
	FieldRunID = "run_id"
	// FieldSetID is the standardized structured logging key for Flickr set identifiers.
	FieldSetID = "set_id"
	// FieldPhotoID is the standardized structured logging key for local photo identifiers.
	FieldPhotoID = "photo_id"
	// FieldRemoteID is the standardized structured logging key for Flickr photo identifiers.
	FieldRemoteID = "remote_id"
)

type contextKey int

const (
	runIDKey contextKey = iota
	setIDKey
)

// WithRunID stamps the audit run identifier onto the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the audit run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(runIDKey).(string)
	return value, ok && value != ""
}

// WithSetID stamps the Flickr set identifier onto the context.
func WithSetID(ctx context.Context, setID string) context.Context {
	return context.WithValue(ctx, setIDKey, setID)
}

// SetIDFromContext extracts the Flickr set identifier, if present.
func SetIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(setIDKey).(string)
	return value, ok && value != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if id, ok := SetIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSetID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
