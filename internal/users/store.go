// Package users implements data access for users, their addresses and
// their posts. Queries are parameterized SQL issued through one shared
// gorm handle.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/Aidin1998/userfeed/common/dbutil"
	"github.com/Aidin1998/userfeed/internal/database"
	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/Aidin1998/userfeed/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository defines the user and post operations served by the API.
type Repository interface {
	ListUsers(ctx context.Context, page int) (*UserPage, error)
	ListPosts(ctx context.Context, userID string) ([]Post, error)
	CreatePost(ctx context.Context, userID string, post NewPost) (*CreatedPost, error)
	Ping(ctx context.Context) error
}

const countUsersQuery = `SELECT COUNT(*) AS total FROM users`

const listUsersQuery = `
SELECT
  users.id,
  users.name,
  users.email,
  addresses.street || ', ' || addresses.city || ', ' || addresses.state || ' ' || addresses.zipcode AS address
FROM users
LEFT JOIN addresses ON addresses.user_id = users.id
ORDER BY users.id
LIMIT ? OFFSET ?`

// Store implements Repository on a gorm handle.
type Store struct {
	logger   *zap.Logger
	db       *gorm.DB
	dialect  database.Dialect
	clock    Clock
	pageSize int

	listPostsQuery  string
	insertPostQuery string
}

var _ Repository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for created_at timestamps.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithPageSize overrides DefaultPageSize.
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewStore creates a Store using db for every query.
func NewStore(logger *zap.Logger, db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		logger:   logger.Named("users-store"),
		db:       db,
		dialect:  database.DialectFor(db),
		clock:    systemClock{},
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.listPostsQuery = fmt.Sprintf(`
SELECT id, title, body, created_at
FROM posts
WHERE user_id = %s
ORDER BY %s DESC`, s.dialect.IntParam(), s.dialect.DateTime("created_at"))

	s.insertPostQuery = fmt.Sprintf(`
INSERT INTO posts (user_id, title, body, created_at)
VALUES (%s, ?, ?, ?)
RETURNING id`, s.dialect.IntParam())

	return s
}

// PageSize returns the number of users per page.
func (s *Store) PageSize() int {
	return s.pageSize
}

// ListUsers counts all users, then fetches the requested page. The two
// queries are not run in a transaction, so the total and the page may
// disagree under concurrent writes. Pages past the counted total are
// answered empty without a second query.
func (s *Store) ListUsers(ctx context.Context, page int) (result *UserPage, err error) {
	defer s.observe("list_users", time.Now(), &err)

	if page < 1 {
		page = 1
	}

	db := s.db.WithContext(ctx)

	total, err := dbutil.ScanOne[int64](db, countUsersQuery)
	if err != nil {
		return nil, err
	}

	totalPages := TotalPages(total, s.pageSize)

	// Past the last page there is nothing to fetch.
	rows := []User{}
	if page <= totalPages {
		rows, err = dbutil.ScanAll[User](db, listUsersQuery, s.pageSize, Offset(page, s.pageSize))
		if err != nil {
			return nil, err
		}
	}

	return &UserPage{
		Data: rows,
		Pagination: Pagination{
			CurrentPage:  page,
			PageSize:     s.pageSize,
			TotalPages:   totalPages,
			TotalRecords: total,
		},
	}, nil
}

// ListPosts returns every post of the user, newest first. An unknown user
// yields an empty list.
func (s *Store) ListPosts(ctx context.Context, userID string) (posts []Post, err error) {
	defer s.observe("list_posts", time.Now(), &err)

	if userID == "" {
		return nil, errors.Invalid.Explain("User ID is required")
	}

	return dbutil.ScanAll[Post](s.db.WithContext(ctx), s.listPostsQuery, userID)
}

// CreatePost inserts a post for userID stamped with the current time. The
// user is not looked up first; a missing user surfaces as a store failure
// when the foreign key is enforced.
func (s *Store) CreatePost(ctx context.Context, userID string, post NewPost) (created *CreatedPost, err error) {
	defer s.observe("create_post", time.Now(), &err)

	if userID == "" {
		return nil, errors.Invalid.Explain("User ID is required")
	}
	if post.Title == "" || post.Body == "" {
		return nil, errors.Invalid.Explain("Title and body are required.")
	}

	createdAt := FormatTimestamp(s.clock.Now())

	id, err := dbutil.ScanOne[int64](s.db.WithContext(ctx), s.insertPostQuery, userID, post.Title, post.Body, createdAt)
	if err != nil {
		if dbutil.IsForeignKeyViolation(err) {
			s.logger.Warn("Post references unknown user", zap.String("user_id", userID))
		}
		return nil, err
	}
	if id == 0 {
		return nil, errors.StoreFailure.Explain("insert into posts returned no id")
	}

	return &CreatedPost{
		ID:        id,
		UserID:    userID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: createdAt,
	}, nil
}

// Ping checks the store connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := database.Ping(ctx, s.db); err != nil {
		return errors.Unavailable.Explain("%s", err.Error()).Wrap(err)
	}
	return nil
}

func (s *Store) observe(op string, start time.Time, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = "error"
	}
	metrics.StoreQueries.WithLabelValues(op, outcome).Inc()
	metrics.StoreQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
