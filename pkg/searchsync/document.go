package searchsync

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/conlang/pkg/lexsearch"
)

// idNamespace scopes the name-based UUIDs of indexed morphemes.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dmitrymomot/conlang/morphemes"))

// Document is the indexed form of one morpheme of one handle.
type Document struct {
	Handle   string `json:"handle"`
	Language string `json:"language"`
	Subset   string `json:"subset,omitempty"`
	Category string `json:"category"`
	Rank     int    `json:"rank"`
	Key      string `json:"key"`
	Gloss    string `json:"gloss"`
}

// ID derives a stable identifier from handle, category and key.
func (d Document) ID() string {
	return uuid.NewSHA1(idNamespace, []byte(d.Handle+"\x00"+d.Category+"\x00"+d.Key)).String()
}

// Documents flattens handles in category processing order. Rank records
// that order so search can apply the same shadowing as lexsearch.Search.
func Documents(handles []lexsearch.Handle) []Document {
	var docs []Document
	for _, h := range handles {
		for rank, c := range h.Table.Categories() {
			entries := h.Table[c]
			for _, key := range entries.Keys() {
				docs = append(docs, Document{
					Handle:   h.Name,
					Language: h.Language,
					Subset:   h.Subset,
					Category: string(c),
					Rank:     rank,
					Key:      key,
					Gloss:    entries[key].Gloss(),
				})
			}
		}
	}
	return docs
}
