// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests) connections
// from the application's configuration. The same connection serves the tenant content store,
// the persisted sync settings and the network-wide audit table.
//
// # Schema Inspection
//
// GetTableColumns lists the actual columns of a table. The integrity feature uses it to verify
// that the tables owned by this service match their GORM models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "menu_sync_logs")
package database
