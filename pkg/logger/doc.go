// Package logger builds the structured loggers used by the conlang CLI and
// HTTP server on top of log/slog.
//
// New returns a *slog.Logger configured through Option functions: output
// format (text or JSON), minimum level, static attributes and
// ContextExtractor callbacks. The handler is wrapped in a
// LogHandlerDecorator that runs the extractors on every record, which is how
// request ids stored in the context by the HTTP middleware end up in log
// lines without being passed around explicitly.
//
// Attribute helpers (Language, Subset, Backend, Key, Error, ...) keep field
// names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "conlang"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "name generated", logger.Language("Elvish"), logger.Subset("dark-elven"))
package logger
