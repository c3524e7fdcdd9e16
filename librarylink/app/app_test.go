package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/library-link/librarylink/config"
	"github.com/Astemirdum/library-link/librarylink/internal/ledger"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/logger"
	"github.com/Astemirdum/library-link/pkg/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMigrate_SeedsSqlite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.Storage{Driver: config.DriverSqlite},
		Sqlite:  sqlite.DB{Path: filepath.Join(t.TempDir(), "state.db")},
		Log:     logger.Log{LogLevel: zapcore.ErrorLevel},
	}
	require.NoError(t, Migrate(cfg))
	// a second run keeps what the first one wrote
	require.NoError(t, Migrate(cfg))

	repo, closeRepo, err := openStorage(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	items, err := repo.Get(context.Background(), model.AllKeys...)
	require.NoError(t, err)
	require.Len(t, items, len(ledger.SeededKeys))
	require.Equal(t, `"student"`, string(items[model.KeyCurrentPersona]))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, _, err := openStorage(context.Background(), &config.Config{Storage: config.Storage{Driver: "mongo"}}, zap.NewNop())
	require.Error(t, err)
}
