// Package logging defines the structured-logging interface injected into the
// client's services and session state. Diagnostics go through a Logger so
// they never mix with screen output on stdout.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// alternating keys and values:
//
//	log.Info(ctx, "signed in", "username", name)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key/value
	// pairs, used to tag a component once at construction.
	With(args ...any) Logger
}
