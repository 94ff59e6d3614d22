package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/conlang/modules/names"
	"github.com/dmitrymomot/conlang/pkg/config"
	lang "github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/pkg/mongo"
	"github.com/dmitrymomot/conlang/pkg/namegen"
	"github.com/dmitrymomot/conlang/pkg/opensearch"
	"github.com/dmitrymomot/conlang/pkg/pg"
	"github.com/dmitrymomot/conlang/pkg/redis"
	"github.com/dmitrymomot/conlang/pkg/requestid"
	"github.com/dmitrymomot/conlang/pkg/searchsync"
	"github.com/dmitrymomot/conlang/pkg/source"
	"github.com/dmitrymomot/conlang/svc/conlang"
)

var ErrUnknownBackend = errors.New("unknown backend")

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg     Config
	log     *slog.Logger
	backend source.Backend
	checks  map[string]names.Check
	closers []func(context.Context) error
}

// flags are the command line overrides of Config.
type flags struct {
	envFiles  []string
	backend   string
	dataDir   string
	ext       string
	languages []string
	seed      uint64
	logLevel  string
}

func loadConfig(f *flags) (Config, error) {
	cfg, err := config.Load[Config](config.WithEnvFiles(f.envFiles...))
	if err != nil {
		return cfg, err
	}
	if f.backend != "" {
		cfg.Backend = f.backend
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.ext != "" {
		cfg.Ext = f.ext
	}
	if len(f.languages) > 0 {
		cfg.Languages = f.languages
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "conlang"),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(strings.ToLower(cfg.LogFormat))))
	}
	return logger.New(opts...)
}

// open connects the configured backend.
func (a *app) open(ctx context.Context) error {
	a.checks = make(map[string]names.Check)

	switch a.cfg.Backend {
	case BackendFS:
		a.backend = source.NewDir(a.cfg.DataDir)
		dir := a.cfg.DataDir
		a.checks["source"] = func(context.Context) error {
			_, err := os.Stat(dir)
			return err
		}

	case BackendS3:
		s3src, err := source.NewS3(ctx, a.cfg.S3)
		if err != nil {
			return err
		}
		a.backend = s3src

	case BackendRedis:
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return err
		}
		a.backend = source.NewRedis(client, source.WithNamespace(a.cfg.Redis.Namespace))
		a.checks["redis"] = redis.Healthcheck(client)
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })

	case BackendPostgres:
		pool, err := pg.Connect(ctx, a.cfg.Postgres)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func(context.Context) error { pool.Close(); return nil })
		if err := pg.Migrate(ctx, pool, a.cfg.Postgres, source.Migrations, a.log); err != nil {
			return err
		}
		a.backend = source.NewPostgres(pool)
		a.checks["postgres"] = pg.Healthcheck(pool)

	case BackendMongo:
		client, err := mongo.New(ctx, a.cfg.Mongo)
		if err != nil {
			return err
		}
		a.backend = source.NewMongoFromDatabase(client.Database(a.cfg.Mongo.Database))
		a.checks["mongo"] = mongo.Healthcheck(client)
		a.closers = append(a.closers, client.Disconnect)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, a.cfg.Backend)
	}

	if a.cfg.Backend != BackendFS && a.cfg.CacheSize > 0 {
		a.backend = source.NewCached(a.backend, a.cfg.CacheSize, a.cfg.CacheTTL)
	}

	a.log.DebugContext(ctx, "backend ready", logger.Backend(a.cfg.Backend))
	return nil
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *app) loader() *lang.Loader {
	return lang.NewLoader(a.backend, lang.WithResolver(lang.NewPathResolver(a.cfg.Dir, a.cfg.Ext)))
}

// service builds the name service; extra options come last and win.
func (a *app) service(opts ...conlang.Option) *conlang.Service {
	base := []conlang.Option{
		conlang.WithGenerator(namegen.New(&namegen.Options{
			Templates: a.cfg.Templates,
			Seed:      a.cfg.Seed,
		})),
		conlang.WithLanguages(a.cfg.Languages...),
		conlang.WithMaxNames(a.cfg.MaxNames),
	}
	return conlang.New(a.loader(), append(base, opts...)...)
}

// indexer connects to OpenSearch.
func (a *app) indexer(ctx context.Context) (*searchsync.Indexer, names.Check, error) {
	client, err := opensearch.New(ctx, a.cfg.OpenSearch)
	if err != nil {
		return nil, nil, err
	}
	return searchsync.New(client, a.cfg.OpenSearch.Index), opensearch.Healthcheck(client), nil
}
