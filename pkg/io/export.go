package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// DefaultIndent is the indent used for exported designs.
const DefaultIndent = "  "

type options struct {
	indent string
}

// Option configures encoding.
type Option func(*options)

// WithIndent sets the per-level indent. An empty string produces compact
// single-line output.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

func newOptions(opts []Option) options {
	o := options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encode returns the serialized design followed by a newline.
func Encode(s *design.State, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(s, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes a design as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] and yields an identical
// design.
func WriteJSON(s *design.State, w io.Writer, opts ...Option) error {
	o := newOptions(opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", o.indent)
	if err := enc.Encode(s.Serialize()); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode design")
	}
	return nil
}

// ExportJSON writes a design to a JSON file at path, replacing any existing
// file atomically.
func ExportJSON(s *design.State, path string, opts ...Option) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	data, err := Encode(s, opts...)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errs.Wrap(errs.ErrCodeInternal, err, "chmod %s", path)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "replace %s", path)
	}
	return nil
}
