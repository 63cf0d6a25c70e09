// Package settings holds the typed sync configuration shared by every tenant: source and target
// tenants, sync mode, conflict strategy and toggles.
//
// Validate reports one FieldError per invalid field. Store keeps the settings in the single-row
// menu_sync_settings table and falls back to the configured seed until the first Save.
package settings
