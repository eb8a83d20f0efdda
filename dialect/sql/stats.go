package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/FabrizioCaldarelli/db-mysql/dialect"
)

// StatementStats holds execution counters for statements routed through a
// StatsDriver.
type StatementStats struct {
	// Queries is the number of row-returning statements executed.
	Queries atomic.Int64
	// Execs is the number of non-returning statements executed.
	Execs atomic.Int64
	// Duration is the total time spent executing, in nanoseconds.
	Duration atomic.Int64
	// Slow is the count of statements exceeding the slow threshold.
	Slow atomic.Int64
	// Errors is the count of failed statements.
	Errors atomic.Int64
}

// Snapshot returns a point-in-time copy of the counters.
func (s *StatementStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Queries:  s.Queries.Load(),
		Execs:    s.Execs.Load(),
		Duration: time.Duration(s.Duration.Load()),
		Slow:     s.Slow.Load(),
		Errors:   s.Errors.Load(),
	}
}

// StatsSnapshot is a point-in-time snapshot of statement statistics.
type StatsSnapshot struct {
	Queries  int64
	Execs    int64
	Duration time.Duration
	Slow     int64
	Errors   int64
}

// String returns a human-readable summary of the snapshot.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("queries=%d execs=%d duration=%s slow=%d errors=%d",
		s.Queries, s.Execs, s.Duration, s.Slow, s.Errors)
}

// SlowHook is called when a statement exceeds the slow threshold.
type SlowHook func(ctx context.Context, query string, args []any, duration time.Duration)

// StatsDriver wraps a dialect.Driver with statement statistics collection
// and slow-statement logging.
type StatsDriver struct {
	dialect.Driver
	stats         *StatementStats
	slowThreshold time.Duration
	slowHook      SlowHook
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the duration after which a statement is counted as
// slow. Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.slowThreshold = d
	}
}

// WithSlowHook sets a callback invoked for every slow statement.
func WithSlowHook(hook SlowHook) StatsOption {
	return func(s *StatsDriver) {
		s.slowHook = hook
	}
}

// WithSlowLog logs slow statements through log/slog.
func WithSlowLog() StatsOption {
	return WithSlowHook(func(_ context.Context, query string, args []any, duration time.Duration) {
		slog.Warn("slow statement", "duration", duration, "query", query, "args", args)
	})
}

// NewStatsDriver wraps a driver with statistics collection.
//
//	drv, _ := sql.Open(dialect.Postgres, dsn)
//	sdrv := sql.NewStatsDriver(drv, sql.WithSlowThreshold(200*time.Millisecond), sql.WithSlowLog())
func NewStatsDriver(drv dialect.Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		Driver:        drv,
		stats:         &StatementStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the underlying counters.
func (d *StatsDriver) Stats() *StatementStats { return d.stats }

// Query executes a row-returning statement and records statistics.
func (d *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.record(ctx, query, args, start, err, true)
	return err
}

// Exec executes a statement and records statistics.
func (d *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.record(ctx, query, args, start, err, false)
	return err
}

func (d *StatsDriver) record(ctx context.Context, query string, args any, start time.Time, err error, isQuery bool) {
	duration := time.Since(start)
	if isQuery {
		d.stats.Queries.Add(1)
	} else {
		d.stats.Execs.Add(1)
	}
	d.stats.Duration.Add(int64(duration))
	if err != nil {
		d.stats.Errors.Add(1)
	}
	if duration > d.slowThreshold {
		d.stats.Slow.Add(1)
		if d.slowHook != nil {
			argv, _ := args.([]any)
			d.slowHook(ctx, query, argv, duration)
		}
	}
}

// Tx starts a transaction whose statements are also recorded.
func (d *StatsDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &statsTx{Tx: tx, driver: d}, nil
}

// statsTx wraps a transaction with statistics collection.
type statsTx struct {
	dialect.Tx
	driver *StatsDriver
}

// Query executes a row-returning statement within the transaction.
func (tx *statsTx) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Query(ctx, query, args, v)
	tx.driver.record(ctx, query, args, start, err, true)
	return err
}

// Exec executes a statement within the transaction.
func (tx *statsTx) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Exec(ctx, query, args, v)
	tx.driver.record(ctx, query, args, start, err, false)
	return err
}

var (
	_ dialect.Driver = (*StatsDriver)(nil)
	_ dialect.Tx     = (*statsTx)(nil)
)
