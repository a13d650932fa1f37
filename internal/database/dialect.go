package database

import "gorm.io/gorm"

// Dialect abstracts the SQL differences the queries depend on.
type Dialect interface {
	// Name is the gorm dialector name ("sqlite", "postgres").
	Name() string

	// DateTime returns an expression that compares the ISO-8601 text column
	// as a point in time rather than as a string.
	DateTime(column string) string

	// IntParam returns the placeholder for an integer column bound from a
	// text value.
	IntParam() string
}

// SQLite is the Dialect for SQLite.
var SQLite Dialect = sqliteDialect{}

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = postgresDialect{}

type sqliteDialect struct{}

func (sqliteDialect) Name() string                  { return "sqlite" }
func (sqliteDialect) DateTime(column string) string { return "datetime(" + column + ")" }
func (sqliteDialect) IntParam() string              { return "?" }

type postgresDialect struct{}

func (postgresDialect) Name() string                  { return "postgres" }
func (postgresDialect) DateTime(column string) string { return "CAST(" + column + " AS timestamptz)" }
func (postgresDialect) IntParam() string              { return "CAST(? AS bigint)" }

// DialectFor returns the Dialect matching the handle's driver. Unknown
// drivers fall back to SQLite.
func DialectFor(db *gorm.DB) Dialect {
	if db != nil && db.Dialector != nil && db.Dialector.Name() == PostgreSQL.Name() {
		return PostgreSQL
	}
	return SQLite
}
