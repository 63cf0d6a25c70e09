// Package settings serves the persisted sync settings: read, partial update with per-field
// validation errors, reset to the configured defaults, and the tenant list used to pick source
// and targets.
package settings
