package wrapper

import (
	"context"
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/logger"
)

const (
	// CodePanicRecovered marks errors converted from a panic in a command handler.
	CodePanicRecovered = "PANIC_RECOVERED"
)

type RecoveryCommandWrapper[I command.Input, R command.Result] struct {
	logger  logger.Logger
	next    command.Command[I, R]
	cmdName string
}

func NewRecoveryCommandWrapper[I command.Input, R command.Result](
	logger logger.Logger,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &RecoveryCommandWrapper[I, R]{
			logger:  logger.Named("cqrs.command.recovery").With("command_name", cmdName),
			next:    next,
			cmdName: cmdName,
		}
	}
}

func (cmd *RecoveryCommandWrapper[I, R]) Execute(ctx context.Context, input I) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError("panic recovered in recovery wrapper", r)

			cmd.logger.
				WithContext(ctx).
				With("panic_values", fmt.Sprintf("%v", r)).
				Errorx(err)
		}
	}()

	result, err = cmd.next.Execute(ctx, input)
	return result, errx.Wrap(err)
}
