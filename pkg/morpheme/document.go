package morpheme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

const subsetsKey = "subsets"

var errNotObject = errors.New("document must be an object")

// Document is a decoded raw table: the morpheme categories plus the
// optional subset index mapping a subset name to the storage key of its
// own document. Top-level keys holding objects are categories; other
// values are ignored unless the key names a canonical category, which
// must be an object.
type Document struct {
	Table   Table
	Subsets map[string]string
}

// SubsetKey returns the storage key declared for subset name.
func (d *Document) SubsetKey(name string) (string, bool) {
	if d == nil || d.Subsets == nil {
		return "", false
	}
	key, ok := d.Subsets[name]
	return key, ok
}

// SubsetNames returns the declared subset names in ascending order.
func (d *Document) SubsetNames() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.Subsets))
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if raw == nil {
		return errors.Join(ErrMalformedData, errNotObject)
	}

	doc := Document{Table: make(Table, len(raw))}
	for key, val := range raw {
		if key == subsetsKey {
			if err := json.Unmarshal(val, &doc.Subsets); err != nil {
				return fmt.Errorf("%w: %w: %v", ErrMalformedData, ErrInvalidSubsets, err)
			}
			continue
		}
		val = bytes.TrimSpace(val)
		if len(val) == 0 || val[0] != '{' {
			if isNull(val) || !Category(key).IsCanonical() {
				continue
			}
			return fmt.Errorf("%w: %w: %q", ErrMalformedData, ErrInvalidCategory, key)
		}
		var m Morphemes
		if err := json.Unmarshal(val, &m); err != nil {
			return fmt.Errorf("%w: category %q: %v", ErrMalformedData, key, err)
		}
		doc.Table[Category(key)] = m
	}

	*d = doc
	return nil
}

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return errors.Join(ErrMalformedData, errNotObject)
	}

	doc := Document{Table: make(Table, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		if key == subsetsKey {
			if err := val.Decode(&doc.Subsets); err != nil {
				return fmt.Errorf("%w: %w: %v", ErrMalformedData, ErrInvalidSubsets, err)
			}
			continue
		}
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.MappingNode {
			if val.Tag == "!!null" || !Category(key).IsCanonical() {
				continue
			}
			return fmt.Errorf("%w: %w: %q", ErrMalformedData, ErrInvalidCategory, key)
		}
		var m Morphemes
		if err := val.Decode(&m); err != nil {
			return fmt.Errorf("%w: category %q: %v", ErrMalformedData, key, err)
		}
		doc.Table[Category(key)] = m
	}

	*d = doc
	return nil
}

func isNull(val []byte) bool {
	return bytes.Equal(val, []byte("null"))
}
