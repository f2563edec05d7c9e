// Package logger provides structured logging for docagent.
//
// It wraps Uber's Zap logger behind a small API that takes a message,
// an optional error and optional field maps, so call sites stay terse:
//
//	log := logger.NewLogger(logger.Config{Level: logger.Info, ServiceName: "docagent"})
//	log.Info("collection created", nil, map[string]interface{}{
//	    "collection": "docs",
//	    "dimension":  384,
//	})
//
// The FXModule provides *Logger to the dependency graph and registers a
// lifecycle hook that flushes buffered entries on shutdown.
package logger
