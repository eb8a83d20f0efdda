// Package session implements an SQL-backed session store. Session records
// hold an id, an opaque msgpack-encoded payload and an expiration timestamp;
// all statements are produced by the dialect/sql statement builder and
// resolved for the driver's placeholder style.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"
	"github.com/FabrizioCaldarelli/db-mysql/dialect/sql"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultTable is the session table name used unless overridden.
const DefaultTable = "session"

// DefaultLifetime is the session lifetime used unless overridden.
const DefaultLifetime = 24 * time.Hour

// Store reads and writes session records through a dialect.Driver. A Store
// is safe for concurrent use.
type Store struct {
	driver   dialect.Driver
	builder  *sql.StatementBuilder
	table    string
	lifetime time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTable overrides the session table name.
func WithTable(name string) Option {
	return func(s *Store) { s.table = name }
}

// WithLifetime overrides the session lifetime.
func WithLifetime(d time.Duration) Option {
	return func(s *Store) { s.lifetime = d }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store over the given driver. The builder is bound to the
// driver's dialect.
func New(drv dialect.Driver, opts ...Option) (*Store, error) {
	if drv == nil {
		return nil, &sql.InvalidConfigurationError{Component: "session store", Reason: "driver is nil"}
	}
	b, err := sql.Dialect(drv.Dialect())
	if err != nil {
		return nil, err
	}
	s := &Store{
		driver:   drv,
		builder:  b,
		table:    DefaultTable,
		lifetime: DefaultLifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == "" {
		return nil, &sql.InvalidConfigurationError{Component: "session store", Reason: "table name is empty"}
	}
	return s, nil
}

// Init creates the session table.
func (s *Store) Init(ctx context.Context) error {
	return s.exec(ctx, &sql.Query{Op: &sql.CreateTable{
		Table: s.table,
		Columns: []sql.ColumnDef{
			{Name: "id", Type: "string NOT NULL PRIMARY KEY"},
			{Name: "data", Type: "binary"},
			{Name: "expire", Type: "bigint"},
		},
	}}, nil)
}

// Read returns the decoded payload of a live session. A missing or expired
// session yields a nil map and no error.
func (s *Store) Read(ctx context.Context, id string) (map[string]any, error) {
	stmt, args, err := s.build(&sql.Query{
		Select: "data",
		From:   s.table,
		Where: []any{"AND",
			[]any{"=", "id", id},
			[]any{">", "expire", s.now().Unix()},
		},
	})
	if err != nil {
		return nil, err
	}
	rows := &sql.Rows{}
	if err := s.driver.Query(ctx, stmt, args, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}
	return decode(payload)
}

// Write stores the payload under the given id, extending the expiration by
// the configured lifetime. An existing record is updated in place; otherwise
// a new record is inserted, falling back to an update when the insert loses
// a uniqueness race.
func (s *Store) Write(ctx context.Context, id string, data map[string]any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: encode payload: %w", err)
	}
	expire := s.now().Add(s.lifetime).Unix()
	n, err := s.update(ctx, id, payload, expire)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	err = s.exec(ctx, &sql.Query{Op: &sql.Insert{
		Table: s.table,
		Columns: sql.ColumnValues{}.
			Set("id", id).
			Set("data", payload).
			Set("expire", expire),
	}}, nil)
	if sql.IsUniqueConstraintError(err) {
		_, err = s.update(ctx, id, payload, expire)
	}
	return err
}

// Destroy deletes the session record.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.exec(ctx, &sql.Query{Op: &sql.Delete{
		Table: s.table,
		Where: []any{"=", "id", id},
	}}, nil)
}

// GC deletes all expired session records.
func (s *Store) GC(ctx context.Context) error {
	return s.exec(ctx, &sql.Query{Op: &sql.Delete{
		Table: s.table,
		Where: []any{"<=", "expire", s.now().Unix()},
	}}, nil)
}

// Regenerate moves the session to a fresh random id and returns it. With
// deleteOld the existing record is re-keyed in place; otherwise it is copied
// and the old record stays valid. A missing source session yields an empty
// record under the new id.
func (s *Store) Regenerate(ctx context.Context, oldID string, deleteOld bool) (string, error) {
	newID := uuid.NewString()
	if deleteOld {
		var res sql.Result
		if err := s.exec(ctx, &sql.Query{Op: &sql.Update{
			Table:   s.table,
			Columns: sql.ColumnValues{}.Set("id", newID),
			Where:   []any{"=", "id", oldID},
		}}, &res); err != nil {
			return "", err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", err
		}
		if n > 0 {
			return newID, nil
		}
		return newID, s.Write(ctx, newID, nil)
	}
	data, err := s.Read(ctx, oldID)
	if err != nil {
		return "", err
	}
	return newID, s.Write(ctx, newID, data)
}

// Count returns the number of live session records.
func (s *Store) Count(ctx context.Context) (int, error) {
	stmt, args, err := s.build(&sql.Query{
		Select: sql.Raw("COUNT(*)"),
		From:   s.table,
		Where:  []any{">", "expire", s.now().Unix()},
	})
	if err != nil {
		return 0, err
	}
	rows := &sql.Rows{}
	if err := s.driver.Query(ctx, stmt, args, rows); err != nil {
		return 0, err
	}
	defer rows.Close()
	if !rows.Next() {
		return 0, rows.Err()
	}
	var n int
	if err := rows.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// update runs the UPDATE arm of the upsert and reports affected rows.
func (s *Store) update(ctx context.Context, id string, payload []byte, expire int64) (int64, error) {
	var res sql.Result
	err := s.exec(ctx, &sql.Query{Op: &sql.Update{
		Table: s.table,
		Columns: sql.ColumnValues{}.
			Set("data", payload).
			Set("expire", expire),
		Where: []any{"=", "id", id},
	}}, &res)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// build compiles a query and resolves its placeholders for the driver.
func (s *Store) build(q *sql.Query) (string, []any, error) {
	params := sql.NewParams()
	stmt, err := s.builder.Build(q, params)
	if err != nil {
		return "", nil, err
	}
	resolved, args := sql.ResolveNamed(stmt, params, s.driver.Dialect())
	if args == nil {
		args = []any{}
	}
	return resolved, args, nil
}

// exec builds, resolves and executes a statement, optionally capturing the
// result.
func (s *Store) exec(ctx context.Context, q *sql.Query, res *sql.Result) error {
	params := sql.NewParams()
	stmt, err := s.builder.Build(q, params)
	if err != nil {
		return err
	}
	resolved, args := sql.ResolveNamed(stmt, params, s.driver.Dialect())
	if res != nil {
		return s.driver.Exec(ctx, resolved, args, res)
	}
	return s.driver.Exec(ctx, resolved, args, nil)
}

// decode unpacks a msgpack payload into a session map. An empty payload is a
// valid empty session.
func decode(payload []byte) (map[string]any, error) {
	if len(payload) == 0 {
		return map[string]any{}, nil
	}
	var data map[string]any
	if err := msgpack.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session: decode payload: %w", err)
	}
	return data, nil
}
