// Package cqrs groups the command side of the Command Query Responsibility Segregation pattern.
//
// Subpackage command defines generic command handlers and the message envelope handed to routing
// components, and command/wrapper provides middleware for validation, target aggregate resolution,
// tracing and logging.
package cqrs
