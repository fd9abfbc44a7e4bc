// Package scenario loads Euro diffusion scenario files.
//
// A scenario file holds a list of records, each with an integer id and a map
// of country names to city rectangles. Three encodings are accepted, chosen
// by file extension: JSON (.json), YAML (.yaml, .yml) and HCL (.hcl). Any of
// them may be zstd-compressed by appending .zst, e.g. cases.json.zst.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/nvandessel/eurodiff/internal/models"
)

// ErrUnsupportedFormat is returned for files whose extension names no known
// scenario encoding.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Format identifies a scenario encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// compressedExt marks a zstd-compressed scenario file.
const compressedExt = ".zst"

// Scenario is one input record: an id and its country rectangles.
type Scenario struct {
	ID        int                    `json:"id" yaml:"id"`
	Countries map[string]models.Rect `json:"countries" yaml:"countries"`
}

// Catalog validates the scenario's countries. Errors carry the scenario id
// and wrap models.ErrInvalidInput.
func (s Scenario) Catalog() (*models.Catalog, error) {
	cat, err := models.NewCatalog(s.Countries)
	if err != nil {
		return nil, fmt.Errorf("scenario %d: %w", s.ID, err)
	}
	return cat, nil
}

// DetectFormat derives the encoding from a file name. compressed reports a
// trailing .zst suffix.
func DetectFormat(path string) (format Format, compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, compressedExt) {
		compressed = true
		name = strings.TrimSuffix(name, compressedExt)
	}

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".hcl":
		return FormatHCL, compressed, nil
	default:
		return "", compressed, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads every scenario in the file at path.
func Load(path string) ([]Scenario, error) {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	return Decode(r, format, filepath.Base(path))
}

// Decode reads scenarios in the given encoding. name labels parse errors.
func Decode(r io.Reader, format Format, name string) ([]Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data, name)
	case FormatYAML:
		return decodeYAML(data, name)
	case FormatHCL:
		return decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Find returns the first scenario with the given id.
func Find(scenarios []Scenario, id int) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// isBlank reports whether data holds nothing but whitespace.
func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
