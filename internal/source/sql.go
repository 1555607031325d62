package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
)

// Column names of the people table.
const (
	nameColumn       = "name"
	salesColumn      = "total_sales"
	periodColumn     = "sales_period"
	multiplierColumn = "experience_multiplier"
	orderColumn      = "id"
)

// SQLPeopleSource reads people from a database table. It never writes.
type SQLPeopleSource struct {
	db    *sql.DB
	kind  schema.SourceKind
	table string
}

var _ contract.PeopleSource = &SQLPeopleSource{} // Compile-time check

// NewSQLPeopleSource opens a connection for the given source kind and verifies it.
func NewSQLPeopleSource(ctx context.Context, kind schema.SourceKind, dsn, table string) (*SQLPeopleSource, error) {
	driverName, err := driverFor(kind)
	if err != nil {
		return nil, err
	}
	if kind == schema.SQLiteSource {
		// Opening a missing path would create an empty database.
		if err := checkSQLiteFile(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s database: %w", contract.ErrIO, kind, err)
	}
	if kind == schema.SQLiteSource {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to connect to %s database: %w", contract.ErrIO, kind, err)
	}

	return &SQLPeopleSource{db: db, kind: kind, table: table}, nil
}

// LoadPeople reads every row of the table in primary key order.
// The location is only used in error messages.
func (s *SQLPeopleSource) LoadPeople(ctx context.Context, location string) ([]schema.Person, error) {
	query, args, err := buildPeopleQuery(s.kind, s.table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s for %s: %w", contract.ErrIO, s.table, location, err)
	}
	defer func() { _ = rows.Close() }()

	var people []schema.Person
	for i := 0; rows.Next(); i++ {
		var (
			name       sql.NullString
			sales      sql.NullInt64
			period     sql.NullInt64
			multiplier sql.NullFloat64
		)
		if err := rows.Scan(&name, &sales, &period, &multiplier); err != nil {
			return nil, fmt.Errorf("%w: row %d of %s: %w", contract.ErrParse, i, s.table, err)
		}
		switch {
		case !name.Valid:
			return nil, nullColumn(nameColumn, i)
		case !sales.Valid:
			return nil, nullColumn(salesColumn, i)
		case !period.Valid:
			return nil, nullColumn(periodColumn, i)
		case !multiplier.Valid:
			return nil, nullColumn(multiplierColumn, i)
		}
		people = append(people, schema.Person{
			Name:                 name.String,
			TotalSales:           sales.Int64,
			SalesPeriod:          period.Int64,
			ExperienceMultiplier: multiplier.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", contract.ErrIO, s.table, err)
	}
	return people, nil
}

// Close closes the database connection.
func (s *SQLPeopleSource) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// buildPeopleQuery builds the SELECT for the people table.
func buildPeopleQuery(kind schema.SourceKind, table string) (string, []any, error) {
	var placeholder sq.PlaceholderFormat = sq.Question
	if kind == schema.PostgreSQLSource {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.
		PlaceholderFormat(placeholder).
		Select(nameColumn, salesColumn, periodColumn, multiplierColumn).
		From(table).
		OrderBy(orderColumn).
		ToSql()
}

// driverFor maps a source kind to its database/sql driver name.
func driverFor(kind schema.SourceKind) (string, error) {
	switch kind {
	case schema.SQLiteSource:
		return "sqlite", nil
	case schema.MySQLSource:
		return "mysql", nil
	case schema.PostgreSQLSource:
		return "pgx", nil
	default:
		return "", fmt.Errorf("%w: %s", contract.ErrUnsupportedSource, kind)
	}
}

// checkSQLiteFile fails when a plain file DSN points to a missing file.
func checkSQLiteFile(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	if _, err := os.Stat(dsn); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: sqlite database %s does not exist", contract.ErrIO, dsn)
		}
		return fmt.Errorf("%w: %w", contract.ErrIO, err)
	}
	return nil
}

func nullColumn(column string, row int) error {
	return fmt.Errorf("%w: %q is NULL in row %d", contract.ErrMissingField, column, row)
}
