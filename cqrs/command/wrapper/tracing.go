package wrapper

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/target"
)

const (
	attrAggregateID      = "aggregate.id"
	attrAggregateVersion = "aggregate.version"
)

type TracingCommandWrapper[I command.Input, R command.Result] struct {
	tracer   trace.Tracer
	spanName string
	next     command.Command[I, R]
}

func NewTracingCommandWrapper[I command.Input, R command.Result]() command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &TracingCommandWrapper[I, R]{
			tracer:   otel.Tracer("cqrs/command"),
			spanName: getSpanNameFromCmd(next),
			next:     next,
		}
	}
}

func (t *TracingCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	ctx, span := t.tracer.Start(ctx, t.spanName)
	defer span.End()

	if tgt, ok := target.FromContext(ctx); ok {
		span.SetAttributes(attribute.String(attrAggregateID, tgt.Identifier()))
		if v, ok := tgt.Version(); ok {
			span.SetAttributes(attribute.Int64(attrAggregateVersion, v))
		}
	}

	result, err := t.next.Execute(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

func getSpanNameFromCmd(cmd any) string {
	fullType := fmt.Sprintf("%T", cmd)

	fullType = strings.TrimPrefix(fullType, "*")
	// generic instantiations print as pkg.Name[...]
	if i := strings.Index(fullType, "["); i >= 0 {
		fullType = fullType[:i]
	}

	parts := strings.Split(fullType, ".")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}

	return fullType
}
