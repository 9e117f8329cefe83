package io

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// ReadJSON decodes a JSON design from r.
//
// The whole input is read and handed to [design.Parse]; missing keys take
// their defaults and every present value is validated. On error no design is
// returned. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*design.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read design")
	}
	return design.Parse(data)
}

// ImportJSON reads a JSON design file at path.
//
// A missing file fails with errors.ErrCodeFileNotFound. Decoding errors are
// the same as for [ReadJSON], prefixed with the path.
func ImportJSON(path string) (*design.State, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "design file %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open %s", path)
	}
	s, err := design.Parse(data)
	if err != nil {
		return nil, errs.WithContext(err, "%s", path)
	}
	return s, nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
