package storage

import "gorm.io/gorm"

// Statements are written in the dialect subset PostgreSQL and SQLite share,
// so the same schema serves both the production and the test database.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS principals (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		activated BOOLEAN NOT NULL DEFAULT TRUE,
		registration_token_hash TEXT,
		registration_token_used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS credentials (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		secret_hash TEXT NOT NULL UNIQUE,
		secret_prefix TEXT NOT NULL,
		active BOOLEAN NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_credentials_owner_id ON credentials (owner_id)`,
	`CREATE TABLE IF NOT EXISTS api_logs (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL UNIQUE,
		timestamp TIMESTAMP NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		client_address TEXT NOT NULL,
		user_agent TEXT NOT NULL,
		credential_fingerprint TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		success BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_api_logs_timestamp ON api_logs (timestamp)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		stock INTEGER NOT NULL,
		category TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)`,
	`CREATE TABLE IF NOT EXISTS order_products (
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		PRIMARY KEY (order_id, product_id)
	)`,
}

func applyMigrations(database *gorm.DB) error {
	for _, statement := range migrationStatements {
		if err := database.Exec(statement).Error; err != nil {
			return err
		}
	}

	return nil
}
