package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"MonkeyApp/internal/config"
	"MonkeyApp/internal/monkey"
	"MonkeyApp/pkg/kit"
)

const service = "monkeyapp"

// app carries what every subcommand needs. It is built once per run in
// PersistentPreRunE and passed to commands explicitly.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	svc      *monkey.Service

	closers []func() error
}

func newApp(v *viper.Viper) *app {
	return &app{v: v, log: zap.NewNop()}
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := kit.NewLogger(service, kit.LogOptions{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = log
	a.closers = append(a.closers, func() error { _ = log.Sync(); return nil })

	src, err := a.newSource(ctx, cfg.Source)
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	metrics := monkey.NewMetrics(a.registry)

	store := monkey.NewStore(src, monkey.WithLogger(log), monkey.WithMetrics(metrics))

	opts := []monkey.ServiceOption{monkey.WithPickMetrics(metrics)}
	if cfg.RandSeed != 0 {
		opts = append(opts, monkey.WithRand(rand.New(rand.NewPCG(cfg.RandSeed, cfg.RandSeed))))
	}
	a.svc = monkey.NewService(store, opts...)

	log.Debug("catalog source configured", zap.String("source", src.Name()))
	return nil
}

func (a *app) newSource(ctx context.Context, sc config.SourceConfig) (monkey.Source, error) {
	switch sc.Kind {
	case config.SourceSeed:
		return monkey.NewSeedSource(sc.SeedDelay), nil
	case config.SourceHTTP:
		return monkey.NewHTTPSource(sc.HTTPURL), nil
	case config.SourceSQL:
		src, err := monkey.OpenSQLSource(sc.SQLDriver, sc.SQLDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, src.Close)
		return src, nil
	case config.SourceS3:
		return monkey.NewS3Source(ctx, monkey.S3Config{
			Bucket:    sc.S3Bucket,
			Key:       sc.S3Key,
			Region:    sc.S3Region,
			Endpoint:  sc.S3Endpoint,
			PathStyle: sc.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, sc.Kind)
	}
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
