package main

import (
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-link/librarylink/app"
	"github.com/Astemirdum/library-link/librarylink/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	envFile  string
	storage  string
	logLevel = zapcore.InfoLevel
)

var rootCmd = &cobra.Command{
	Use:   "librarylink",
	Short: "Library Link: book availability, requests and course reserves",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the message API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(newConfig())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and seed first-run state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Migrate(newConfig())
	},
}

func newConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(logLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithReadTimeout(30*time.Second),
		config.WithStorageDriver(storage),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", config.DriverSqlite, "storage driver: sqlite, postgres or memory (STORAGE_DRIVER wins)")
	rootCmd.PersistentFlags().Var((*levelFlag)(&logLevel), "log-level", "log level (LOG_LEVEL wins)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// levelFlag adapts zapcore.Level to pflag.Value.
type levelFlag zapcore.Level

func (l *levelFlag) String() string     { return (*zapcore.Level)(l).String() }
func (l *levelFlag) Set(s string) error { return (*zapcore.Level)(l).Set(s) }
func (l *levelFlag) Type() string       { return "level" }

func main() {
	if err := rootCmd.Execute(); err != nil {
		stdLog.Fatal(err)
	}
}
