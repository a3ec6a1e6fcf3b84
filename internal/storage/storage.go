// Package storage wraps the database connection pool behind a small,
// transaction-safe execution surface. All SQL in the service flows
// through it: reads scan into typed structs, writes run inside their
// own transaction with a single commit-or-rollback decision, and every
// statement is logged with its arguments and outcome.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/pavlenkodm/movie-stats/internal/logger"
)

// Storage executes SQL against the underlying pool. Connections are
// opened lazily and reopened transparently by database/sql; callers
// never see a connection or cursor handle.
type Storage struct {
	db *sqlx.DB
}

// New creates a Storage on top of an open sqlx pool.
func New(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Select executes a read statement and scans every result row into
// dest, which must be a pointer to a slice of structs. No matching
// rows leaves dest empty; it is not an error.
func (s *Storage) Select(ctx context.Context, dest any, query string, args ...any) error {
	err := s.db.SelectContext(ctx, dest, query, args...)
	logQuery(query, args, err)
	return err
}

// Get executes a read statement expected to yield a single row and
// scans it into dest. Returns sql.ErrNoRows when nothing matches.
func (s *Storage) Get(ctx context.Context, dest any, query string, args ...any) error {
	err := s.db.GetContext(ctx, dest, query, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, err)
	}
	return err
}

// Exec executes an insert/update/delete/DDL statement inside its own
// transaction and returns the number of rows affected. The transaction
// is committed on success and rolled back on any failure before the
// error is returned.
func (s *Storage) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logQuery(query, args, err)
		return 0, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		tx.Rollback()
		logQuery(query, args, err)
		return 0, err
	}

	affected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		logQuery(query, args, err)
		return 0, err
	}

	logQuery(query, args, nil)
	return affected, nil
}

// ExecBatch executes the same statement once per parameter set within
// a single transaction and returns the total rows affected. An empty
// sequence is a no-op: it returns 0 without opening a transaction.
func (s *Storage) ExecBatch(ctx context.Context, query string, paramSets [][]any) (int64, error) {
	if len(paramSets) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logQuery(query, nil, err)
		return 0, err
	}

	var total int64
	for _, args := range paramSets {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			tx.Rollback()
			logQuery(query, args, err)
			return 0, err
		}
		n, _ := res.RowsAffected()
		total += n
	}

	if err := tx.Commit(); err != nil {
		logQuery(query, nil, err)
		return 0, err
	}

	logQuery(query, nil, nil)
	return total, nil
}

const tableExistsQuery = `
	SELECT 1
	FROM information_schema.TABLES
	WHERE TABLE_SCHEMA = DATABASE()
	  AND TABLE_NAME = ?
	LIMIT 1
`

// TableExists reports whether a table is present in the currently
// selected database, via the information_schema catalog.
func (s *Storage) TableExists(ctx context.Context, table string) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, tableExistsQuery, table)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logQuery(tableExistsQuery, []any{table}, err)
		return false, err
	}
	return true, nil
}

// EnsureTable makes sure a table exists. When tableName is non-empty
// the catalog is checked first and createSQL is skipped if the table
// is already there, so repeated calls execute the DDL at most once.
// With an empty tableName createSQL runs unconditionally and must be
// idempotent itself (CREATE TABLE IF NOT EXISTS).
func (s *Storage) EnsureTable(ctx context.Context, createSQL, tableName string) error {
	if tableName != "" {
		exists, err := s.TableExists(ctx, tableName)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
	}
	_, err := s.Exec(ctx, createSQL)
	return err
}

// CreateDatabaseIfNotExists provisions a utf8mb4 database. Requires a
// connection opened without a schema selected, or create privileges on
// the current one.
func (s *Storage) CreateDatabaseIfNotExists(ctx context.Context, name string) error {
	stmt := fmt.Sprintf(
		"CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci",
		name,
	)
	_, err := s.Exec(ctx, stmt)
	return err
}

// RunScript executes a multi-statement SQL script. Statements are
// separated on line-trailing semicolons; blank lines and lines
// starting with "--" or "#" are skipped. Statements containing
// embedded semicolons (procedure bodies, semicolons inside string
// literals at end of line) are misparsed — known limitation.
func (s *Storage) RunScript(ctx context.Context, script string) error {
	for _, stmt := range splitStatements(script) {
		if _, err := s.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	var buf []string
	for _, line := range strings.Split(script, "\n") {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "--") || strings.HasPrefix(l, "#") {
			continue
		}
		buf = append(buf, line)
		if strings.HasSuffix(l, ";") {
			stmts = append(stmts, strings.Join(buf, "\n"))
			buf = nil
		}
	}
	if len(buf) > 0 {
		stmts = append(stmts, strings.Join(buf, "\n"))
	}
	return stmts
}

// IsDuplicateKey reports whether err is a MySQL unique-key violation
// (error 1062).
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// logQuery logs a statement single-line with its arguments. Arguments
// never contain plaintext credentials; password material reaches the
// store only as a bcrypt hash.
func logQuery(query string, args []any, err error) {
	stmt := strings.Join(strings.Fields(query), " ")
	if err != nil {
		logger.Log.Errorw("query failed", "stmt", stmt, "args", args, "error", err)
		return
	}
	logger.Log.Infow("query", "stmt", stmt, "args", args)
}
