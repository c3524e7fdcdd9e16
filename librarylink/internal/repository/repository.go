package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Repository persists state values by key. Set writes all given items or
// none of them.
type Repository interface {
	Get(ctx context.Context, keys ...model.StateKey) (model.Items, error)
	Set(ctx context.Context, items model.Items) error
}

type repository struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	log *zap.Logger

	txOpts *sql.TxOptions
	now    func() time.Time
}

const kvTableName = `kv_store`

type Option func(r *repository)

// WithSerializable runs writes in serializable transactions.
func WithSerializable() Option {
	return func(r *repository) {
		r.txOpts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
}

func NewRepository(db *sqlx.DB, log *zap.Logger, opts ...Option) *repository {
	r := &repository{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(placeholder(db.DriverName())),
		log: log.Named("repo"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func placeholder(driver string) sq.PlaceholderFormat {
	if driver == "pgx" || driver == "postgres" {
		return sq.Dollar
	}
	return sq.Question
}

type kvRow struct {
	Name string `db:"name"`
	Data string `db:"data"`
}

func (r *repository) Get(ctx context.Context, keys ...model.StateKey) (model.Items, error) {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, string(k))
	}
	query, args, err := r.qb.Select("name", "data").
		From(kvTableName).
		Where(sq.Eq{"name": names}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []kvRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.Error("Get", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	items := make(model.Items, len(rows))
	for _, row := range rows {
		items[model.StateKey(row.Name)] = []byte(row.Data)
	}
	return items, nil
}

func (r *repository) Set(ctx context.Context, items model.Items) error {
	if len(items) == 0 {
		return nil
	}
	now := r.now().UTC()
	q := r.qb.Insert(kvTableName).
		Columns("name", "data", "updated_at").
		Suffix("on conflict (name) do update set data = excluded.data, updated_at = excluded.updated_at")
	for k, v := range items {
		q = q.Values(string(k), string(v), now)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, r.txOpts)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("Set", zap.String("q", query), zap.Error(err))
		return mapErr(err)
	}
	return mapErr(tx.Commit())
}

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.SerializationFailure {
		return errors.Wrap(errs.ErrConflict, pgErr.Message)
	}
	return err
}
