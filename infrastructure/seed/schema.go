package seed

// schema creates the four dashboard tables when they are missing. It is a
// bootstrap for fresh databases only; existing tables are left as they are.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers (id),
		amount INT NOT NULL CHECK (amount >= 0),
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`,
}
