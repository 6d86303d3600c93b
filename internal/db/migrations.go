package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
// Each migration runs inside a transaction.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		host       TEXT     PRIMARY KEY,
		name       TEXT     NOT NULL,
		value      TEXT     NOT NULL,
		path       TEXT     NOT NULL DEFAULT '/',
		same_site  TEXT     NOT NULL DEFAULT 'lax',
		secure     INTEGER  NOT NULL DEFAULT 0,
		expires_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i, err)
		}

		if _, err := tx.Exec(m); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("migration %d: %w (also failed to rollback: %v)", i, err, rbErr)
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i, err)
		}
	}

	return nil
}
