// SPDX-License-Identifier: MIT
// Package: lvbib/core
//
// logger.go — structured lifecycle logging contract.
//
// Policy:
//   • Logging is disabled by default (discard handler).
//   • Lifecycle events are emitted at Debug with a "path" attribute.
//
// AI-Hints:
//   • Pass a *slog.Logger directly; it satisfies SLogger.
//   • Filter on msg=finalizeRejected to see which fields callers forget.

package core

import (
	"io"
	"log/slog"
)

// SLogger is the subset of *slog.Logger used by this module. Any
// slog-compatible logger satisfies it.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

var _ SLogger = (*slog.Logger)(nil)

// DiscardLogger returns the logger used when none is configured.
func DiscardLogger() SLogger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Lifecycle event names. Kept stable so log pipelines can filter on them.
const (
	EventNodeOpen         = "nodeOpen"
	EventChildOpen        = "childOpen"
	EventChildClosed      = "childClosed"
	EventNodeClose        = "nodeClose"
	EventFinalize         = "finalize"
	EventFinalizeRejected = "finalizeRejected"
)
