// Package server holds the HTTP server configuration.
//
// The cmd/start command builds the Fiber application from this configuration: listening port,
// API key protection, the header carrying the acting user for audit records, and the request
// body limit.
package server
