// Package logger builds the application's zap logger.
//
// Debug level uses zap's development preset, every other level the production one.
// Format selects json or console encoding.
//
// WithRayID attaches the request id stored by the rayid middleware, so every log
// line written while serving a request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	logger.WithRayID(log, c).Warn("Special frame not found", zap.String("name", name))
package logger
