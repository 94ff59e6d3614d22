// Package pg connects to PostgreSQL with pgx/v5 and applies the goose
// migrations that create the conlang_documents table.
//
// Connect opens a *pgxpool.Pool with retries, Migrate brings the schema up
// to date from an embedded filesystem and Healthcheck adapts the pool to
// the readiness probe:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, source.Migrations, slog.Default()); err != nil {
//	    return err
//	}
//	src := source.NewPostgres(pool)
//
// Settings come from CONLANG_PG_* environment variables, see Config.
package pg
