package sqlite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

type DB struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"library-link.db"`
}

// NewSqliteDB opens (or creates) the database file and applies the embedded
// goose migrations. A single connection keeps writers from tripping over
// SQLITE_BUSY.
func NewSqliteDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Connect")
	}
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "goose.Up")
	}
	return db, nil
}
