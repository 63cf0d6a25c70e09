// Package logs serves the sync audit log: paged listing with filters, single records,
// statistics and purging.
package logs
