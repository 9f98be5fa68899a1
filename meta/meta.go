// Package meta carries command metadata through context.
//
// Command wrappers inject values such as the trace id and the resolved target aggregate,
// and the logger picks them up when building a context-aware logger.
package meta

import (
	"context"
	"fmt"

	"github.com/code19m/errx"
)

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID represents a unique identifier for tracing commands across services.
	TraceID ContextKey = "trace_id"

	// ServiceName identifies the name of current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"

	// CommandName identifies the command being executed.
	CommandName ContextKey = "command_name"

	// AggregateID is the identifier of the aggregate targeted by the command.
	AggregateID ContextKey = "aggregate_id"

	// AggregateVersion is the aggregate version the command expects, if it declares one.
	AggregateVersion ContextKey = "aggregate_version"
)

// Keys lists every predefined metadata key in a stable order.
func Keys() []ContextKey {
	return []ContextKey{
		TraceID,
		ServiceName,
		ServiceVersion,
		CommandName,
		AggregateID,
		AggregateVersion,
	}
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all predefined metadata from the provided context.
// Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range Keys() {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// Find returns the metadata value for key, or an empty string.
func Find(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// ShouldGetMeta returns the metadata value for key and fails when it is absent or not a string.
func ShouldGetMeta(ctx context.Context, key ContextKey) (string, error) {
	raw := ctx.Value(key)
	if raw == nil {
		return "", errx.New(
			fmt.Sprintf("[meta]: key not found in context: %s", key),
			errx.WithDetails(errx.D{"key": string(key)}),
		)
	}

	v, ok := raw.(string)
	if !ok {
		return "", errx.New(
			fmt.Sprintf("[meta]: type mismatch for key %s: expected string, got %T", key, raw),
			errx.WithDetails(errx.D{"key": string(key)}),
		)
	}
	return v, nil
}
