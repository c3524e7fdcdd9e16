package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-link/librarylink/config"
	"github.com/Astemirdum/library-link/librarylink/internal/catalog"
	"github.com/Astemirdum/library-link/librarylink/internal/handler"
	"github.com/Astemirdum/library-link/librarylink/internal/repository"
	"github.com/Astemirdum/library-link/librarylink/internal/server"
	"github.com/Astemirdum/library-link/librarylink/internal/service"
	"github.com/Astemirdum/library-link/librarylink/migrations"
	"github.com/Astemirdum/library-link/pkg/kafka"
	"github.com/Astemirdum/library-link/pkg/logger"
	"github.com/Astemirdum/library-link/pkg/postgres"
	"github.com/Astemirdum/library-link/pkg/sqlite"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library-link")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	repo, closeRepo, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	profile, err := cfg.Professor.Profile()
	if err != nil {
		return errors.Wrap(err, "professor profile")
	}

	var (
		events service.EventLog = service.NopEventLog{}
		group  sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewAsyncProducer")
		}
		events = service.NewKafkaEventLog(producer, log)

		group, err = kafka.NewConsumer(cfg.Kafka, kafka.MessagesConsumerGroup)
		if err != nil {
			_ = events.Close()
			return errors.Wrap(err, "kafka.NewConsumer")
		}
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error("events.Close", zap.Error(err))
		}
	}()

	cat := catalog.New(catalog.NewSource(cfg.Catalog), log)
	svc := service.NewService(repo, cat, profile, log, service.WithEventLog(events))
	if err := svc.Init(ctx); err != nil {
		return errors.Wrap(err, "init state")
	}

	h := handler.New(svc, cfg.DefaultUser, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})

	if group != nil {
		consumer := handler.NewConsumer(h.Dispatcher(), cfg.DefaultUser, log)
		g.Go(func() error {
			return kafka.Consume(gctx, group, consumer, kafka.MessagesTopic)
		})
		g.Go(func() error {
			<-gctx.Done()
			return group.Close()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	err = g.Wait()
	log.Info("Graceful shutdown finished")
	return err
}

// Migrate applies the schema and seeds first-run state without serving.
func Migrate(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library-link")
	ctx := context.Background()

	repo, closeRepo, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	profile, err := cfg.Professor.Profile()
	if err != nil {
		return errors.Wrap(err, "professor profile")
	}
	return service.NewService(repo, nil, profile, log).Init(ctx)
}

func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		return repository.NewRepository(db, log, repository.WithSerializable()), func() { db.Close() }, nil
	case config.DriverSqlite, "":
		db, err := sqlite.NewSqliteDB(ctx, &cfg.Sqlite, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		return repository.NewRepository(db, log), func() { db.Close() }, nil
	case config.DriverMemory:
		log.Warn("memory storage: state is lost on exit")
		return repository.NewMemory(), func() {}, nil
	}
	return nil, nil, errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
