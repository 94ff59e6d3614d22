package morpheme

import (
	"encoding/json"
	"errors"
	"maps"

	"gopkg.in/yaml.v3"
)

const meaningField = "meaning"

type entryKind uint8

const (
	plainEntry entryKind = iota
	describedEntry
)

// Entry is a morpheme gloss in one of its two persisted shapes: a plain
// string, or a described record with a meaning and optional extra fields.
// The zero value is an empty plain gloss.
type Entry struct {
	kind    entryKind
	meaning string
	fields  map[string]any
}

// Plain returns an entry persisted as a bare gloss string.
func Plain(gloss string) Entry {
	return Entry{kind: plainEntry, meaning: gloss}
}

// Described returns an entry persisted as a record. A "meaning" key in
// fields is ignored in favour of the meaning argument.
func Described(meaning string, fields map[string]any) Entry {
	e := Entry{kind: describedEntry, meaning: meaning}
	if len(fields) > 0 {
		e.fields = maps.Clone(fields)
		delete(e.fields, meaningField)
	}
	return e
}

// Gloss resolves the entry to its gloss string regardless of shape.
func (e Entry) Gloss() string {
	return e.meaning
}

// IsDescribed reports whether the entry uses the record shape.
func (e Entry) IsDescribed() bool {
	return e.kind == describedEntry
}

// Fields returns a copy of the descriptive fields other than meaning.
func (e Entry) Fields() map[string]any {
	return maps.Clone(e.fields)
}

func (e Entry) asValue() any {
	if e.kind == plainEntry {
		return e.meaning
	}
	v := make(map[string]any, len(e.fields)+1)
	maps.Copy(v, e.fields)
	v[meaningField] = e.meaning
	return v
}

// entryFromValue builds an Entry from a generically decoded JSON or YAML value.
func entryFromValue(raw any) (Entry, error) {
	switch v := raw.(type) {
	case string:
		return Plain(v), nil
	case map[string]any:
		meaning := ""
		if m, ok := v[meaningField]; ok {
			s, ok := m.(string)
			if !ok {
				return Entry{}, errors.Join(ErrMalformedData, ErrInvalidMeaning)
			}
			meaning = s
		}
		return Described(meaning, v), nil
	default:
		return Entry{}, errors.Join(ErrMalformedData, ErrInvalidEntry)
	}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.asValue())
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Join(ErrMalformedData, err)
	}
	entry, err := entryFromValue(raw)
	if err != nil {
		return err
	}
	*e = entry
	return nil
}

func (e Entry) MarshalYAML() (any, error) {
	return e.asValue(), nil
}

func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return errors.Join(ErrMalformedData, err)
	}
	entry, err := entryFromValue(raw)
	if err != nil {
		return err
	}
	*e = entry
	return nil
}
