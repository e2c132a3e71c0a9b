// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections from the application's configuration.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings and
// verifies the connection with a ping bounded by Config.TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition. The gallery
// feature uses them on startup to report a gallery_entries table that is missing
// columns the repository writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "gallery_entries", []string{"sku", "file"})
package database
