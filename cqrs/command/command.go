// Package command defines interfaces and types for CQRS command handling.
//
// It provides abstractions for command execution, input/output typing, the message envelope handed to
// routing components, and middleware wrapping.
package command

import (
	"context"
	"slices"
)

// EmptyResult is a placeholder type for commands that do not return a result.
type (
	EmptyResult = struct{}
)

type (
	// Input represents the input type for a command. The input is the command payload.
	Input any

	// Result represents the result type for a command.
	Result any
)

// Command defines a handler for a CQRS command.
//
// Execute runs the command with the given input and context, returning a result or error.
type Command[I Input, R Result] interface {
	// Execute processes the command input and returns a result or error.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadlines.
	//   - input: The command input.
	//
	// Returns the command result and error, if any.
	Execute(context.Context, I) (R, error)
}

// Func adapts a plain function to the Command interface.
type Func[I Input, R Result] func(context.Context, I) (R, error)

// Execute calls f.
func (f Func[I, R]) Execute(ctx context.Context, input I) (R, error) {
	return f(ctx, input)
}

// WrapFunc defines a middleware function for wrapping command handlers.
//
// It takes a Command and returns a wrapped Command, enabling cross-cutting concerns.
type WrapFunc[I Input, R Result] func(Command[I, R]) Command[I, R]

// Chain wraps cmd so that the first wrapper is the outermost one.
func Chain[I Input, R Result](cmd Command[I, R], wraps ...WrapFunc[I, R]) Command[I, R] {
	for _, wrap := range slices.Backward(wraps) {
		cmd = wrap(cmd)
	}
	return cmd
}
