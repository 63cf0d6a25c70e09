// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log entry, so all logs
// related to a request can be correlated. WithSync scopes a logger to one source/target/menu
// sync attempt, which is how the sync engine tags its per-target diagnostics.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithSync(log, 1, 2, 7)
//	l.Warn("Item creation failed", zap.Error(err))
package logger
