package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE partners (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			representative_last_name TEXT,
			representative_first_name TEXT,
			email TEXT UNIQUE,
			phone TEXT,
			address TEXT,
			partner_type TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			partner_id TEXT NOT NULL,
			order_type TEXT NOT NULL,
			amount NUMERIC,
			status TEXT NOT NULL DEFAULT 'draft',
			order_date DATE NOT NULL,
			delivery_date DATE,
			notes TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE status_histories (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			from_status TEXT,
			to_status TEXT NOT NULL,
			comment TEXT,
			created_by TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			last_name TEXT,
			first_name TEXT,
			role TEXT NOT NULL DEFAULT 'user',
			avatar_url TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}
