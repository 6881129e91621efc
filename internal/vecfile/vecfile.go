package vecfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned when a file holds no vectors.
	ErrEmpty = errors.New("vecfile: no vectors")
	// ErrInvalid is returned when a file's contents are inconsistent.
	ErrInvalid = errors.New("vecfile: invalid vector set")
)

// Compression identifies the container of a vector file.
type Compression uint8

const (
	// CompressionNone indicates a plain YAML/JSON file.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream.
	CompressionZSTD
	// CompressionLZ4 indicates an lz4 frame.
	CompressionLZ4
)

// CompressionFor derives the compression from a file name suffix.
func CompressionFor(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Format identifies the document syntax of a vector file.
type Format uint8

const (
	// FormatYAML writes YAML documents.
	FormatYAML Format = iota
	// FormatJSON writes JSON documents.
	FormatJSON
)

// FormatFor derives the document format from a file name, ignoring a
// trailing compression suffix. Reading accepts both formats either way,
// since every JSON document is valid YAML.
func FormatFor(name string) Format {
	if CompressionFor(name) != CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Set is a named collection of equally sized vectors.
type Set struct {
	Dimensions int         `yaml:"dimensions" json:"dimensions"`
	Labels     []string    `yaml:"labels,omitempty" json:"labels,omitempty"`
	Vectors    [][]float64 `yaml:"vectors" json:"vectors"`
}

// Validate checks that the set is non-empty and consistently sized.
// A zero Dimensions is inferred from the first vector.
func (s *Set) Validate() error {
	if len(s.Vectors) == 0 {
		return ErrEmpty
	}
	if s.Dimensions == 0 {
		s.Dimensions = len(s.Vectors[0])
	}
	if s.Dimensions <= 0 {
		return fmt.Errorf("%w: dimensions %d", ErrInvalid, s.Dimensions)
	}
	for i, v := range s.Vectors {
		if len(v) != s.Dimensions {
			return fmt.Errorf("%w: vector %d has %d components, want %d", ErrInvalid, i, len(v), s.Dimensions)
		}
	}
	if len(s.Labels) != 0 && len(s.Labels) != len(s.Vectors) {
		return fmt.Errorf("%w: %d labels for %d vectors", ErrInvalid, len(s.Labels), len(s.Vectors))
	}
	return nil
}

// Len returns the number of vectors.
func (s *Set) Len() int {
	return len(s.Vectors)
}

// Flatten returns the vectors as one row-major slice.
func (s *Set) Flatten() []float64 {
	out := make([]float64, 0, len(s.Vectors)*s.Dimensions)
	for _, v := range s.Vectors {
		out = append(out, v...)
	}
	return out
}

// Label returns the label of row i, or its index when the set is unlabeled.
func (s *Set) Label(i int) string {
	if i < len(s.Labels) {
		return s.Labels[i]
	}
	return fmt.Sprintf("#%d", i)
}

// Decode reads a set from r.
func Decode(r io.Reader, c Compression) (*Set, error) {
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("vecfile: zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	case CompressionLZ4:
		r = lz4.NewReader(r)
	}

	var s Set
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("vecfile: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes s to w in format f. The compressor, if any, is closed
// before Encode returns, including on failure.
func Encode(w io.Writer, s *Set, f Format, c Compression) (err error) {
	var closer io.Closer
	switch c {
	case CompressionZSTD:
		enc, zerr := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zerr != nil {
			return fmt.Errorf("vecfile: zstd: %w", zerr)
		}
		w, closer = enc, enc
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		w, closer = lw, lw
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("vecfile: compress: %w", cerr)
			}
		}()
	}

	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if jerr := enc.Encode(s); jerr != nil {
			return fmt.Errorf("vecfile: encode: %w", jerr)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	if yerr := enc.Encode(s); yerr != nil {
		_ = enc.Close()
		return fmt.Errorf("vecfile: encode: %w", yerr)
	}
	if yerr := enc.Close(); yerr != nil {
		return fmt.Errorf("vecfile: encode: %w", yerr)
	}
	return nil
}

// Load reads a set from the named file, choosing decompression by suffix.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, CompressionFor(path))
}

// Save writes a set to the named file, choosing format and compression by
// suffix.
func Save(path string, s *Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s, FormatFor(path), CompressionFor(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
