package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is accepted by both SQLite and MySQL.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
  id       INTEGER      NOT NULL PRIMARY KEY,
  username VARCHAR(255) NOT NULL,
  email    VARCHAR(255) NOT NULL,
  password VARCHAR(255) NOT NULL,
  role     VARCHAR(64)  NOT NULL,
  balance  DOUBLE       NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS owned_items (
  user_id  INTEGER      NOT NULL,
  item_id  VARCHAR(255) NOT NULL,
  name     VARCHAR(255) NOT NULL,
  value    DOUBLE       NOT NULL DEFAULT 0,
  position INTEGER      NOT NULL DEFAULT 0,
  PRIMARY KEY (user_id, item_id)
)`,
}

// CreateSchema creates the users and owned_items tables if they are missing.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}
