package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/source"
)

type fakeRow struct {
	body []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.body
	return nil
}

type fakeRows struct {
	keys []string
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return []any{r.keys[r.pos-1]}, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.keys)
}

func (r *fakeRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.keys[r.pos-1]
	return nil
}

// fakePgx records the last statement and its arguments.
type fakePgx struct {
	docs    map[string][]byte
	sql     string
	args    []any
	execErr error
}

func (f *fakePgx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	body, ok := f.docs[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{body: body}
}

func (f *fakePgx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return &fakeRows{keys: []string{"Conlangs/Elvish/Elvish.json", "Conlangs/Human/Human.json"}}, nil
}

func (f *fakePgx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	f.docs[args[0].(string)] = args[1].([]byte)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgres(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("write then read", func(t *testing.T) {
		t.Parallel()
		db := &fakePgx{docs: map[string][]byte{}}
		p := source.NewPostgres(db)

		require.NoError(t, p.Write(ctx, "/Conlangs/Elvish/Elvish.json", []byte(`{}`)))
		assert.Contains(t, db.sql, "ON CONFLICT (key)")

		data, err := p.Read(ctx, "Conlangs/Elvish/Elvish.json")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := source.NewPostgres(&fakePgx{docs: map[string][]byte{}}).Read(ctx, "a/a.json")
		assert.ErrorIs(t, err, morpheme.ErrNotFound)
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		db := &fakePgx{docs: map[string][]byte{}, execErr: errors.New("read-only transaction")}
		assert.ErrorIs(t, source.NewPostgres(db).Write(ctx, "a/a.json", nil), source.ErrWriteFailed)
	})

	t.Run("keys escape like patterns", func(t *testing.T) {
		t.Parallel()
		db := &fakePgx{}
		keys, err := source.NewPostgres(db).Keys(ctx, "Con_langs%")
		require.NoError(t, err)
		assert.Equal(t, []string{"Conlangs/Elvish/Elvish.json", "Conlangs/Human/Human.json"}, keys)
		assert.Equal(t, []any{`Con\_langs\%%`}, db.args)
	})
}
