// Package server holds the HTTP server configuration.
//
// The start command reads the listen port, API key, body limit and graceful
// shutdown timeout from Config.
package server
