package conlang

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// DecodeFunc decodes raw content into a document.
type DecodeFunc func(data []byte) (*morpheme.Document, error)

// DecoderForKey picks a decoder from the key extension: YAML for .yaml and
// .yml, JSON otherwise.
func DecoderForKey(key string) DecodeFunc {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(key), ".")) {
	case "yaml", "yml":
		return DecodeYAML
	default:
		return DecodeJSON
	}
}

// DecodeJSON decodes a JSON document.
func DecodeJSON(data []byte) (*morpheme.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Join(morpheme.ErrMalformedData, ErrEmptyContent)
	}
	var doc morpheme.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err)
	}
	return &doc, nil
}

// DecodeYAML decodes a YAML document.
func DecodeYAML(data []byte) (*morpheme.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Join(morpheme.ErrMalformedData, ErrEmptyContent)
	}
	var doc morpheme.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err)
	}
	return &doc, nil
}

// malformed makes sure decoding errors always match morpheme.ErrMalformedData,
// including syntax errors raised before any Unmarshaler runs.
func malformed(err error) error {
	if errors.Is(err, morpheme.ErrMalformedData) {
		return err
	}
	return fmt.Errorf("%w: %v", morpheme.ErrMalformedData, err)
}
