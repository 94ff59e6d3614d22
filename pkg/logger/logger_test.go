package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level name", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("skipped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("static and context attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "conlang")),
			logger.WithContextValue("request_id", ctxKey{}),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "generated", logger.Language("Elvish"), logger.Subset(""), logger.Error(nil))

		entry := decode(t, buf)
		assert.Equal(t, "conlang", entry["svc"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "Elvish", entry["language"])
		assert.NotContains(t, entry, "subset")
		assert.NotContains(t, entry, "error")
	})

	t.Run("extractors survive WithGroup", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(context.Context) (slog.Attr, bool) {
				return slog.String("backend", "fs"), true
			}),
		).WithGroup("load")
		log.Info("read", logger.Key("Conlangs/Elvish/Elvish.json"))

		entry := decode(t, buf)
		group, ok := entry["load"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Conlangs/Elvish/Elvish.json", group["key"])
		assert.Equal(t, "fs", group["backend"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	for env, want := range map[string]string{
		"production": "production",
		"prod":       "production",
		"stage":      "staging",
	} {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(env, "conlang"))
		log.Debug("hidden")
		log.Info("shown")

		entry := decode(t, buf)
		assert.Equal(t, want, entry["env"], env)
		assert.Equal(t, "conlang", entry["service"], env)
	}

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("", ""))
	log.Debug("visible")
	assert.Contains(t, buf.String(), "env=development")
	assert.NotContains(t, buf.String(), "service=")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, slog.Any("error", errors.New("x")).Key, logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("request_id", "r"), logger.RequestID("r"))
	assert.Equal(t, slog.Int("count", 3), logger.Count(3))
	assert.Equal(t, slog.String("backend", "s3"), logger.Backend("s3"))
	assert.Equal(t, slog.String("template", "prefix-root"), logger.Template("prefix-root"))
}
