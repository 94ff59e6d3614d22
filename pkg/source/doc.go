// Package source provides storage backends for conlang documents.
//
// Every backend implements conlang.Source, returning an error matching
// morpheme.ErrNotFound for missing keys, and conlang.Lister plus Writer so
// that a data directory can be copied into it with Copy:
//
//   - FS and Dir read from any io/fs filesystem, including embed.FS.
//   - S3 reads objects from an S3 or S3-compatible bucket.
//   - Redis stores documents as string values under a key namespace.
//   - Postgres stores documents in the conlang_documents table.
//   - Mongo stores documents in a collection keyed by _id.
//
// # Usage
//
//	dir := source.NewDir("./data")
//	pool, _ := pg.Connect(ctx, pgCfg)
//	dst := source.NewPostgres(pool)
//	n, err := source.Copy(ctx, dir, dst, "")
//
//	loader := conlang.NewLoader(dst)
//	table, err := loader.LoadLanguage(ctx, "elvish", "dark-elven")
//
// Keys are slash separated paths such as "Conlangs/Elvish/Elvish.json" in
// every backend.
package source
