package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/dmitrymomot/conlang/pkg/namegen"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeNames(w io.Writer, list []namegen.Name, asJSON bool) error {
	if asJSON {
		return writeJSON(w, list)
	}
	for _, n := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", n.Text, n.Meaning); err != nil {
			return err
		}
	}
	return nil
}

// writeResults prints search results grouped by handle, both levels sorted.
func writeResults(w io.Writer, results map[string]map[string]string, asJSON bool) error {
	if asJSON {
		return writeJSON(w, results)
	}
	for _, handle := range slices.Sorted(maps.Keys(results)) {
		if _, err := fmt.Fprintf(w, "%s:\n", handle); err != nil {
			return err
		}
		found := results[handle]
		for _, key := range slices.Sorted(maps.Keys(found)) {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", key, found[key]); err != nil {
				return err
			}
		}
	}
	return nil
}
