// Package utils provides loose value conversion helpers shared by the HTTP handlers and the
// CLI: form and query values arrive as strings and tenant identifiers are int64 everywhere else.
package utils
