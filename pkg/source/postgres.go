package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Migrations holds the goose migrations creating the Postgres schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to goose.
const MigrationsDir = "migrations"

// PgxQuerier defines the pgx methods used by Postgres. *pgxpool.Pool,
// *pgx.Conn and pgx.Tx satisfy it.
type PgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	selectDocumentQuery = `SELECT body FROM conlang_documents WHERE key = $1`
	selectKeysQuery     = `SELECT key FROM conlang_documents WHERE key LIKE $1 ESCAPE '\' ORDER BY key`
	upsertDocumentQuery = `INSERT INTO conlang_documents (key, body, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

// Postgres stores documents in the conlang_documents table.
type Postgres struct {
	db PgxQuerier
}

// NewPostgres returns a Postgres backend. The schema must be migrated with
// Migrations beforehand.
func NewPostgres(db PgxQuerier) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var body []byte
	if err := p.db.QueryRow(ctx, selectDocumentQuery, key).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(key, nil)
		}
		if ctxErr := contextError(err, "select document"); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("select document %s: %w", key, err)
	}
	return body, nil
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := p.db.Query(ctx, selectKeysQuery, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("select keys: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("select keys: %w", err)
	}
	return keys, nil
}

func (p *Postgres) Write(ctx context.Context, key string, data []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if _, err := p.db.Exec(ctx, upsertDocumentQuery, key, data); err != nil {
		return errors.Join(ErrWriteFailed, fmt.Errorf("%s: %w", key, err))
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
