package monitor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"syncronic.com/empmonitor/config"
	"syncronic.com/empmonitor/core"
	"syncronic.com/empmonitor/infrastructure/communication"
	"syncronic.com/empmonitor/infrastructure/devops"
	"syncronic.com/empmonitor/infrastructure/filesystem"
	"syncronic.com/empmonitor/monitor/model"
)

// App holds everything shared across requests. It is built once at startup
// and released with Close at shutdown.
type App struct {
	Config   *config.Config
	DB       *core.DatabaseManager
	Storage  filesystem.Storage
	Logger   *zap.Logger
	Notifier communication.Notifier
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dsn, err := resolveDSN(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dm, err := core.New(cfg.Database.Driver, dsn, cfg.Database.MaxConnections, core.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, err
	}
	if err := dm.Migrate(&model.Employee{}, &model.LogEntry{}); err != nil {
		dm.Close()
		return nil, err
	}

	storage, err := NewStorage(ctx, cfg.Storage)
	if err != nil {
		dm.Close()
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      dm,
		Storage: storage,
		Logger:  logger,
	}
	if cfg.Slack.Token != "" {
		app.Notifier = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			ErrorChannelID: cfg.Slack.ErrorChannelID,
		})
	}

	logger.Info("application initialised",
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.Bool("alerts", app.Notifier != nil),
	)
	return app, nil
}

// NewStorage selects the storage backend named in cfg.
func NewStorage(ctx context.Context, cfg config.StorageConfig) (filesystem.Storage, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return filesystem.NewLocalStorage(cfg.UploadDir, cfg.URLPrefix)
	case config.BackendS3:
		return filesystem.NewS3Storage(ctx, filesystem.S3Options{
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			KeyPrefix:     cfg.S3.KeyPrefix,
			Endpoint:      cfg.S3.Endpoint,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}

func resolveDSN(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Database.SSMParameter == "" {
		return cfg.Database.DSN, nil
	}

	client, err := devops.NewSSMClient(ctx, cfg.Storage.S3.Region)
	if err != nil {
		return "", err
	}
	return devops.ResolveDSN(ctx, client, cfg.Database.SSMParameter, cfg.Database.Name, cfg.Database.Driver)
}

func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Logger != nil {
		// syncing stdout/stderr fails on some platforms; nothing to act on
		_ = a.Logger.Sync()
	}
	return errors.Join(errs...)
}
