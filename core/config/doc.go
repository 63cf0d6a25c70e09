// Package config loads the menu-sync configuration.
//
// Values come from struct tag defaults, an optional config.yaml, a .env file and environment
// variables, in increasing order of precedence. Nested keys map to upper-case environment names
// joined by underscores.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, actor header, body limit
//   - Database: driver (mysql or sqlite) and connection details
//   - Storage: MinIO credentials and the snapshot bucket
//   - Log: level and format
//   - Sync: seed settings, audit retention, snapshot prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.ConflictStrategy)
package config
