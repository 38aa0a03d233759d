package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same queries run inside and outside the brand lock.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements port.Store on PostgreSQL using pgxpool.
type Store struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
	sb          sq.StatementBuilderType
}

var _ port.Store = (*Store)(nil)

// NewStore returns a store on pool. A positive lockTimeout is applied with
// SET LOCAL lock_timeout to every brand lock.
func NewStore(pool *pgxpool.Pool, lockTimeout time.Duration) *Store {
	return &Store{
		pool:        pool,
		lockTimeout: lockTimeout,
		sb:          sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const (
	pgForeignKeyViolation = "23503"
	pgLockNotAvailable    = "55P03"
)

// wrapErr maps driver errors onto domain errors.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return domain.NewPersistenceError(op, err)
}

// WithBrandLock opens a read committed transaction and locks the brand row
// with SELECT ... FOR UPDATE. Other writers of the same brand queue on the
// row lock; reads after the lock see everything they committed.
func (s *Store) WithBrandLock(ctx context.Context, brandID uuid.UUID, fn func(ctx context.Context, tx port.BrandTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return wrapErr("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = wrapErr("commit", cerr)
		}
	}()

	if s.lockTimeout > 0 {
		if _, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())); err != nil {
			return wrapErr("set lock timeout", err)
		}
	}

	b, err := scanBrand(tx.QueryRow(ctx, selectBrand+` WHERE id = $1 FOR UPDATE`, brandID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return domain.NewPersistenceError("lock brand", err)
		}
		return wrapErr("lock brand", err)
	}
	active, err := domain.NewActiveBrand(b)
	if err != nil {
		return err
	}
	return fn(ctx, &brandTx{q: tx, sb: s.sb, brand: active})
}
