// Package wrapper provides middleware wrappers for CQRS command handlers.
//
// This package enables cross-cutting concerns such as input validation, target aggregate resolution,
// deadlines, alerting, tracing and logging to be applied to command handlers in a composable way.
// A typical chain, outermost first, is:
//
//	command.Chain(handler,
//	    wrapper.NewMetaInjectCommandWrapper[I, R](service, version),
//	    wrapper.NewAlertCommandWrapper[I, R](log, alerts, "ship_order"),
//	    wrapper.NewTimeoutCommandWrapper[I, R](5*time.Second),
//	    wrapper.NewValidationCommandWrapper[I, R](log, "ship_order"),
//	    wrapper.NewTargetCommandWrapper[I, R](log, resolver, "ship_order"),
//	    wrapper.NewTracingCommandWrapper[I, R](),
//	    wrapper.NewLoggerCommandWrapper[I, R](log, "ship_order"),
//	    wrapper.NewRecoveryCommandWrapper[I, R](log, "ship_order"),
//	)
package wrapper
