// Package testutil provides a throwaway SQLite store with the users,
// addresses and posts tables for package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Aidin1998/userfeed/internal/config"
	"github.com/Aidin1998/userfeed/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Schema mirrors the tables the service reads and writes. The service
// itself never creates them.
var Schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE addresses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zipcode TEXT NOT NULL
	)`,
	`CREATE TABLE posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// NewDB opens a file-backed SQLite database in a temp dir, creates the
// schema and closes it when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "userfeed.db"),
		MaxIdleConns: 2,
	}
	db, err := database.Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	for _, stmt := range Schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// Address is an address fixture row.
type Address struct {
	Street, City, State, Zipcode string
}

// InsertUser adds a user, and an address when addr is non-nil.
func InsertUser(t testing.TB, db *gorm.DB, name, email string, addr *Address) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.Raw(`INSERT INTO users (name, email) VALUES (?, ?) RETURNING id`, name, email).Scan(&id).Error)
	if addr != nil {
		require.NoError(t, db.Exec(
			`INSERT INTO addresses (user_id, street, city, state, zipcode) VALUES (?, ?, ?, ?, ?)`,
			id, addr.Street, addr.City, addr.State, addr.Zipcode,
		).Error)
	}
	return id
}

// SeedUsers adds n users named "User 1".."User n". Odd-numbered users get
// an address, even-numbered users have none.
func SeedUsers(t testing.TB, db *gorm.DB, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		var addr *Address
		if i%2 == 1 {
			addr = &Address{
				Street:  fmt.Sprintf("%d Main St", i),
				City:    "Springfield",
				State:   "IL",
				Zipcode: fmt.Sprintf("627%02d", i),
			}
		}
		ids = append(ids, InsertUser(t, db, fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), addr))
	}
	return ids
}

// InsertPost adds a post with an explicit created_at value.
func InsertPost(t testing.TB, db *gorm.DB, userID int64, title, body, createdAt string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.Raw(
		`INSERT INTO posts (user_id, title, body, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		userID, title, body, createdAt,
	).Scan(&id).Error)
	return id
}
