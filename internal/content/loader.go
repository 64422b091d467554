package content

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/validation"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Load reads, decodes and validates a content file. An empty path returns
// the built-in defaults.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes data as a content document. Keys missing from data keep
// their built-in values; unknown keys are rejected.
func Parse(path string, data []byte) (*Content, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, folioerrors.NewYAMLParseError(path, err)
	}

	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", path, err)
	}

	return c, nil
}

// Validate checks c against its struct tags.
func Validate(c *Content) error {
	if c == nil {
		return folioerrors.NewValidationError("content", "is required", nil)
	}
	return validation.Struct(c)
}

// Dump writes c as YAML.
func Dump(w io.Writer, c *Content) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	return enc.Close()
}
