package monkey

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// SQLSource reads the monkeys table. Rows are ordered by position, then name.
type SQLSource struct {
	db *sql.DB
}

func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// OpenSQLSource opens a database/sql handle for one of the registered drivers.
func OpenSQLSource(driver, dsn string) (*SQLSource, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return NewSQLSource(db), nil
}

func (s *SQLSource) Name() string { return "sql" }

func (s *SQLSource) Close() error { return s.db.Close() }

func (s *SQLSource) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *SQLSource) LoadAll(ctx context.Context) ([]Species, error) {
	var out []Species

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT name, location, details, image, population, latitude, longitude
			FROM monkeys
			ORDER BY position ASC, name ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Species, 0, 16)
		for rows.Next() {
			var m Species
			if err := rows.Scan(&m.Name, &m.Location, &m.Details, &m.Image, &m.Population, &m.Latitude, &m.Longitude); err != nil {
				return err
			}
			out = append(out, m)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
