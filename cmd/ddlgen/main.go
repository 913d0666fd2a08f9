// cmd/ddlgen/main.go
//
// ddlgen writes the PostgreSQL schema to migrations/schema.sql. The JSONB
// items column on orders holds the line-item snapshot; carts never touch
// Postgres (they live in Firestore with a TTL on expiresAt).
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const schema = `-- generated by cmd/ddlgen; do not edit by hand

CREATE TABLE IF NOT EXISTS roles (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL DEFAULT '',
    username    TEXT NOT NULL UNIQUE,
    password    TEXT NOT NULL DEFAULT '',
    email       TEXT NOT NULL DEFAULT '',
    phone       TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    role_id     BIGINT NOT NULL REFERENCES roles (id)
);

CREATE TABLE IF NOT EXISTS statuses (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
    id          BIGSERIAL PRIMARY KEY,
    article     INTEGER NOT NULL DEFAULT 0,
    title       TEXT NOT NULL DEFAULT '',
    url         TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    price       DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_products_article ON products (article);

CREATE TABLE IF NOT EXISTS orders (
    id               BIGSERIAL PRIMARY KEY,
    number           TEXT NOT NULL UNIQUE,
    date             TEXT NOT NULL DEFAULT '',
    shipping_address TEXT NOT NULL DEFAULT '',
    shipping_details TEXT NOT NULL DEFAULT '',
    description      TEXT NOT NULL DEFAULT '',
    status_id        BIGINT NOT NULL REFERENCES statuses (id),
    client_id        BIGINT NOT NULL REFERENCES users (id),
    manager_id       BIGINT REFERENCES users (id),
    items            JSONB NOT NULL DEFAULT '[]'::jsonb
);

CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status_id);
CREATE INDEX IF NOT EXISTS idx_orders_manager ON orders (manager_id);
`

func main() {
	out := "migrations/schema.sql"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ddlgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, []byte(schema), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ddlgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", out)
}
