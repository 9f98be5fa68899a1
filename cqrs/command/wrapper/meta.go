package wrapper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/meta"
)

type MetaInjectCommandWrapper[I command.Input, R command.Result] struct {
	serviceName    string
	serviceVersion string
	next           command.Command[I, R]
}

func NewMetaInjectCommandWrapper[I command.Input, R command.Result](
	serviceName, serviceVersion string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &MetaInjectCommandWrapper[I, R]{serviceName: serviceName, serviceVersion: serviceVersion, next: next}
	}
}

func (cmd *MetaInjectCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	metadata := map[meta.ContextKey]string{
		meta.TraceID:        getTraceID(ctx),
		meta.ServiceName:    cmd.serviceName,
		meta.ServiceVersion: cmd.serviceVersion,
	}

	// add meta to context for downstream chain
	ctx = meta.InjectMetaToContext(ctx, metadata)

	return cmd.next.Execute(ctx, input)
}

// getTraceID returns the trace id already present in ctx, the id of the current span,
// or a generated one, in that order.
func getTraceID(ctx context.Context) string {
	if traceID := meta.Find(ctx, meta.TraceID); traceID != "" {
		return traceID
	}

	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if traceID.IsValid() {
		return traceID.String()
	}

	return fmt.Sprintf("man-%s", uuid.New().String())
}
