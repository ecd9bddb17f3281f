// Package upstream defines the error type returned when an external collaborator
// (design service, record source, page download, PDF merge) fails.
//
// Collaborator failures are fatal to the enclosing request. Handlers use errors.As
// to recognise them and answer with 502 Bad Gateway instead of 500.
package upstream
