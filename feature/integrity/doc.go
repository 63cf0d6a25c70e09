// Package integrity validates the infrastructure menu-sync depends on.
//
// # Checks Provided
//
//   - Structure: the snapshot folders exist in the storage bucket (e.g. /snapshots).
//   - Schema: the audit table, the settings table and the content tables match
//     the gorm models (missing tables, missing columns, declared types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
