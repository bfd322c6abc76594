package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/qrgen/pkg/config"
	"github.com/dmitrymomot/qrgen/pkg/httpserver"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/storage"
	"github.com/dmitrymomot/qrgen/svc/generator"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"local"` // local or s3
	StorageDir    string `env:"STORAGE_DIR" envDefault:"./data/qrcodes"`
	FilesBaseURL  string `env:"FILES_BASE_URL" envDefault:"/files/"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "qrgen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	config.MustLoad(&cfg)
	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "qrgen"))
	logger.SetAsDefault(log)

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	svc, err := generator.New(store, generator.WithLogger(log))
	if err != nil {
		return fmt.Errorf("init generator: %w", err)
	}

	router := newRouter(&handlers{svc: svc, store: store, log: log})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

// newStorage selects the artifact backend by the STORAGE_DRIVER variable.
func newStorage(ctx context.Context, cfg appConfig) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		var s3cfg storage.S3Config
		if err := config.Load(&s3cfg); err != nil {
			return nil, err
		}
		return storage.NewS3Storage(ctx, s3cfg)
	case "local":
		return storage.NewLocalStorage(cfg.StorageDir, cfg.FilesBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
