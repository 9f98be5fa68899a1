package wrapper

import (
	"context"
	"strconv"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/meta"
	"github.com/rise-and-shine/cmdtarget/target"
)

// TargetCommandWrapper resolves the aggregate targeted by the command input before executing it.
// Commands without a valid target are rejected with the resolution error and never reach the handler.
// The resolved target is stored in the context for downstream wrappers and the handler.
type TargetCommandWrapper[I command.Input, R command.Result] struct {
	logger   logger.Logger
	resolver target.CommandTargetResolver
	next     command.Command[I, R]
	cmdName  string
}

func NewTargetCommandWrapper[I command.Input, R command.Result](
	logger logger.Logger,
	resolver target.CommandTargetResolver,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &TargetCommandWrapper[I, R]{
			logger:   logger.Named("cqrs.command.target").With("command_name", cmdName),
			resolver: resolver,
			next:     next,
			cmdName:  cmdName,
		}
	}
}

func (cmd *TargetCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	t, err := cmd.resolver.ResolveTarget(command.NewMessage(input))
	if err != nil {
		cmd.logger.WithContext(ctx).Warnx(err)

		var zero R
		return zero, errx.Wrap(err)
	}

	metadata := map[meta.ContextKey]string{
		meta.AggregateID: t.Identifier(),
	}
	if v, ok := t.Version(); ok {
		metadata[meta.AggregateVersion] = strconv.FormatInt(v, 10)
	}

	ctx = target.WithContext(ctx, t)
	ctx = meta.InjectMetaToContext(ctx, metadata)

	return cmd.next.Execute(ctx, input)
}
