// Package schema creates the local tables and seeds reference data. The
// schema is applied idempotently on every startup; it is recreated, not
// versioned.
package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"innsync/infras/sqlite"
	"innsync/shared/failure"
)

// The booking row carries a denormalized snapshot of hotel (h_*) and room
// (r_*) attributes at booking time, so booking history stays stable even if
// the live listing changes later.
const bookingTable = `
CREATE TABLE IF NOT EXISTS booking (
    b_id       INTEGER PRIMARY KEY,
    email      TEXT,
    b_no_room  INTEGER,
    b_start    TEXT,
    b_end      TEXT,
    status     TEXT,
    total      REAL,
    h_id       INTEGER,
    h_name     TEXT,
    h_address  TEXT,
    h_lat      REAL,
    h_lng      REAL,
    h_img      TEXT,
    h_rating   REAL,
    r_id       INTEGER,
    r_name     TEXT,
    r_bed      TEXT,
    r_no_adult INTEGER,
    r_no_child INTEGER,
    r_price    REAL,
    r_size     REAL,
    r_img      TEXT
);`

const likedTable = `
CREATE TABLE IF NOT EXISTS liked_hotels (
    id        INTEGER PRIMARY KEY,
    name      TEXT,
    city      TEXT,
    category  TEXT,
    desc      TEXT,
    img       TEXT,
    lat       REAL,
    lng       REAL,
    price     REAL,
    rating    REAL,
    address   TEXT,
    agoda_url TEXT
);`

// The hotel cache is keyed by the remote hotel id; refreshes upsert in place
// so the table never accumulates duplicate rows.
const hotelTable = `
CREATE TABLE IF NOT EXISTS hotel (
    id        INTEGER PRIMARY KEY,
    name      TEXT,
    city      TEXT,
    category  TEXT,
    desc      TEXT,
    image_url TEXT,
    lat       REAL,
    lng       REAL,
    price     REAL,
    rating    REAL
);`

const cityTable = `
CREATE TABLE IF NOT EXISTS city (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    name  TEXT,
    image TEXT
);`

// seedCity is a reference city reinserted on every migration. The city table
// is a deterministic cache, not user data: it is wiped and reseeded each
// startup by design.
type seedCity struct {
	Name  string
	Image string
}

var seedCities = []seedCity{
	{Name: "New York", Image: "https://plus.unsplash.com/premium_photo-1682657000431-84ea0dcf361c?q=80&w=1935&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"},
	{Name: "Tokyo", Image: "https://images.unsplash.com/photo-1551641506-ee5bf4cb45f1?q=80&w=1784&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8fHx8fGVufDB8fHx8fA%3D%3D"},
	{Name: "London", Image: "https://plus.unsplash.com/premium_photo-1671809692422-4893b9e09119?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8fHx8fGVufDB8fHx8fA%3D%3D"},
	{Name: "Paris", Image: "https://plus.unsplash.com/premium_photo-1661919210043-fd847a58522d?q=80&w=2071&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8fHx8fGVufDB8fHx8fA%3D%3D"},
}

// Migrate applies all table definitions in one batch and reseeds the city
// reference list. Safe to call on every startup. Errors come back as a
// schema-migration Failure; callers log and continue, and downstream
// repository calls on missing tables surface as store-unavailable.
func Migrate(ctx context.Context, handle *sqlite.Handle) error {
	db, err := handle.Conn()
	if err != nil {
		return err
	}

	ddl := bookingTable + "\n" + likedTable + "\n" + hotelTable + "\n" + cityTable

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return failure.SchemaMigrationFailed(fmt.Errorf("applying schema: %w", err)) //nolint:wrapcheck
	}

	if err := reseedCities(ctx, handle); err != nil {
		return failure.SchemaMigrationFailed(fmt.Errorf("seeding cities: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func reseedCities(ctx context.Context, handle *sqlite.Handle) error {
	return handle.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM city`); err != nil {
			return fmt.Errorf("clearing city table: %w", err)
		}

		for _, city := range seedCities {
			_, err := tx.ExecContext(ctx, `INSERT INTO city (name, image) VALUES (?, ?)`, city.Name, city.Image)
			if err != nil {
				return fmt.Errorf("inserting city %q: %w", city.Name, err)
			}
		}

		return nil
	})
}
