package pattern

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Extension is the only pattern file extension Load accepts.
const Extension = ".rle"

// ErrBadExtension is returned by Load for files not named *.rle.
var ErrBadExtension = errors.New("pattern: unsupported file format")

// Load decodes the RLE file at path and writes its live cells into t. The
// whole file is decoded before t is touched, so on error t is unchanged.
func Load(path string, t Target) error {
	p, err := ReadFile(path, t.Width(), t.Height())
	if err != nil {
		return err
	}
	p.Apply(t)
	return nil
}

// ReadFile decodes the RLE file at path for a width x height grid.
func ReadFile(path string, width, height int) (*Pattern, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, errors.Wrapf(ErrBadExtension, "[ReadFile] %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	p, err := Decode(f, width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] %s", path)
	}
	return p, nil
}
