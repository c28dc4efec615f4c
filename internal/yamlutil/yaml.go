// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNoFrontMatter  = errors.New("yamlutil: no front matter delimiter")
)

// frontMatterDelim fences the YAML block at the top of a post.
var frontMatterDelim = []byte("---")

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter separates a document into its YAML front matter block and
// the body below it. The document must start with a "---" line; the block
// runs to the next "---" line. Returns ErrNoFrontMatter when the document has
// no leading delimiter, in which case the whole input is the body.
func SplitFrontMatter(data []byte) (meta, body []byte, err error) {
	if !bytes.HasPrefix(data, frontMatterDelim) {
		return nil, data, ErrNoFrontMatter
	}
	rest := data[len(frontMatterDelim):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, data, ErrNoFrontMatter
	}
	rest = rest[1:]

	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return nil, data, ErrNoFrontMatter
	}
	meta = rest[:end+1]
	body = rest[end+1+len(frontMatterDelim):]
	for len(body) > 0 && (body[0] == '\n' || body[0] == '\r') {
		body = body[1:]
	}
	return meta, body, nil
}
