package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts are stored as TEXT so decimals round-trip without float error.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    position INTEGER NOT NULL,
    name TEXT NOT NULL COLLATE NOCASE PRIMARY KEY,
    price TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    max INTEGER NOT NULL,
    category TEXT NOT NULL DEFAULT 'Other'
);

CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    total_sale TEXT NOT NULL,
    total_profit TEXT NOT NULL,
    tendered TEXT NOT NULL,
    change TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
