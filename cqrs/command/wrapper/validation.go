package wrapper

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/mask"
	"github.com/rise-and-shine/cmdtarget/val"
)

// ValidationCommandWrapper rejects command inputs that violate their `validate` struct tags.
type ValidationCommandWrapper[I command.Input, R command.Result] struct {
	logger logger.Logger
	next   command.Command[I, R]
}

func NewValidationCommandWrapper[I command.Input, R command.Result](
	logger logger.Logger,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &ValidationCommandWrapper[I, R]{
			logger: logger.Named("cqrs.command.validation").With("command_name", cmdName),
			next:   next,
		}
	}
}

func (cmd *ValidationCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	if err := val.ValidateSchema(input); err != nil {
		cmd.logger.
			WithContext(ctx).
			With("command_input", mask.Fields(input)).
			Warnx(err)

		var zero R
		return zero, errx.Wrap(err)
	}

	return cmd.next.Execute(ctx, input)
}
