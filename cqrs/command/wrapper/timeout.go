package wrapper

import (
	"context"
	"errors"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
)

const (
	// CodeCommandTimeout marks errors returned after the command deadline set by the timeout wrapper passed.
	CodeCommandTimeout = "COMMAND_TIMEOUT"
)

// TimeoutCommandWrapper bounds command execution with a deadline. A non-positive timeout disables it.
type TimeoutCommandWrapper[I command.Input, R command.Result] struct {
	timeout time.Duration
	next    command.Command[I, R]
}

func NewTimeoutCommandWrapper[I command.Input, R command.Result](timeout time.Duration) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &TimeoutCommandWrapper[I, R]{timeout: timeout, next: next}
	}
}

func (cmd *TimeoutCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	if cmd.timeout <= 0 {
		return cmd.next.Execute(ctx, input)
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.timeout)
	defer cancel()

	result, err := cmd.next.Execute(ctx, input)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return result, errx.Wrap(err,
			errx.WithCode(CodeCommandTimeout),
			errx.WithType(errx.T_Internal),
			errx.WithDetails(errx.D{"timeout": cmd.timeout.String()}),
		)
	}

	return result, err
}
