package wrapper

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/mask"
)

type LoggerCommandWrapper[I command.Input, R command.Result] struct {
	logger  logger.Logger
	next    command.Command[I, R]
	cmdName string
}

func NewLoggerCommandWrapper[I command.Input, R command.Result](
	logger logger.Logger,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &LoggerCommandWrapper[I, R]{
			logger:  logger.Named("cqrs.command.logger").With("command_name", cmdName),
			next:    next,
			cmdName: cmdName,
		}
	}
}

func (cmd *LoggerCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	start := time.Now()

	result, err := executeWithRecovery(ctx, cmd.next, input)

	logger := cmd.logger.
		WithContext(ctx).
		With("execution_time", time.Since(start).String()).
		With("command_input", mask.Fields(input))

	if err != nil {
		logger.Errorx(err)
	} else {
		logger.Info("command executed")
	}

	return result, err
}

func executeWithRecovery[I command.Input, R command.Result](
	ctx context.Context,
	cmd command.Command[I, R],
	input I,
) (_ R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError("panic recovered in logger command wrapper", r)
		}
	}()

	return cmd.Execute(ctx, input)
}

func panicError(msg string, r any) error {
	stackTrace := make([]byte, 4096) // 4KB
	stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]
	return errx.New(msg, errx.WithCode(CodePanicRecovered), errx.WithType(errx.T_Internal), errx.WithDetails(errx.D{
		"stack_trace":  string(stackTrace),
		"panic_values": fmt.Sprintf("%v", r),
	}))
}
