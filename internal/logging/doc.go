// Package logging provides structured diagnostic logging for zha-logfmt.
//
// This package wraps a zap logger with package-level convenience functions.
// Standard output is reserved for formatted records, so diagnostics are
// always written to stderr, and logging is silent unless a level is set
// with --log-level or ZHA_LOGFMT_LOG_LEVEL.
//
// # Log Levels
//
//   - Debug: per-line decisions (drop reason, record kind)
//   - Info: start-up configuration and the exit summary
//   - Warn: recoverable input problems
//   - Error: start-up failures
//
// # Usage
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Stream finished",
//	    zap.Int("lines_read", stats.Read),
//	    zap.Int("lines_emitted", stats.Emitted),
//	)
//
// # Broken Pipes
//
// Once the downstream consumer has closed stdout, Silence replaces the logger
// with a no-op so nothing else is attempted on a dead stream.
package logging
