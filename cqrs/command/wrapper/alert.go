package wrapper

import (
	"context"
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdtarget/alert"
	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/meta"
)

// AlertCommandWrapper reports panics and internal errors of the wrapped command to an alert provider.
// Rejections such as an invalid command target or failed validation are expected outcomes and are not reported.
// Alerts are sent in the background; the command result and error are returned unchanged.
type AlertCommandWrapper[I command.Input, R command.Result] struct {
	logger        logger.Logger
	alertProvider alert.Provider
	next          command.Command[I, R]
	operation     string
}

func NewAlertCommandWrapper[I command.Input, R command.Result](
	logger logger.Logger,
	alertProvider alert.Provider,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &AlertCommandWrapper[I, R]{
			logger:        logger.Named("cqrs.command.alert").With("command_name", cmdName),
			alertProvider: alertProvider,
			next:          next,
			operation:     fmt.Sprintf("command: %s", cmdName),
		}
	}
}

func (cmd *AlertCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	result, err := executeWithRecovery(ctx, cmd.next, input)
	if err == nil {
		return result, nil
	}

	e := errx.AsErrorX(err)
	if e.Type() != errx.T_Internal {
		return result, err
	}

	code := e.Code()
	if code == "" {
		code = "INTERNAL"
	}

	details := make(map[string]string)
	for k, v := range meta.ExtractMetaFromContext(ctx) {
		details[string(k)] = v
	}
	details["error_trace"] = fmt.Sprint(e.Trace())

	go func() {
		sendErr := cmd.alertProvider.SendError(context.WithoutCancel(ctx), code, err.Error(), cmd.operation, details)
		if sendErr != nil {
			cmd.logger.WithContext(ctx).With("alert_send_error", sendErr.Error()).Warn("failed to send error alert")
		}
	}()

	return result, err
}
