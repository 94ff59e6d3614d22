package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Language records a language identifier.
func Language(name string) slog.Attr {
	return slog.String("language", name)
}

// Subset records a subset name; empty names are omitted.
func Subset(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("subset", name)
}

// Template records the structural template of a generated name.
func Template(t string) slog.Attr {
	return slog.String("template", t)
}

// Backend records the storage backend name.
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// Key records a storage key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Count records a number of items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
