// Package conlang is the application service behind the CLI and the HTTP
// module. It resolves a Request to a morpheme table through a loader and
// composes names from it, and it exposes discovery and search over every
// available language.
//
// A Request with Hybrid pairs composes a hybrid table and ignores Language
// and Subset. Otherwise Language is required:
//
//	svc := conlang.New(loader, conlang.WithSeed(42))
//	name, err := svc.Generate(ctx, conlang.Request{Language: "elvish", Subset: "dark-elven"})
//
// Errors wrap the morpheme sentinels (ErrNotFound, ErrMalformedData,
// ErrConfiguration) so callers can map them with errors.Is.
package conlang
