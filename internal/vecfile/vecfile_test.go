package vecfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *Set {
	return &Set{
		Dimensions: 2,
		Labels:     []string{"east", "north", "west"},
		Vectors: [][]float64{
			{1, 0},
			{0, 1},
			{-1, 0},
		},
	}
}

func TestDecodeYAML(t *testing.T) {
	src := `
dimensions: 3
vectors:
  - [1, 0, 0]
  - [0, 1, 0]
`
	s, err := Decode(strings.NewReader(src), CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0}, s.Flatten())
	assert.Equal(t, "#1", s.Label(1))
}

func TestDecodeJSON(t *testing.T) {
	src := `{"labels": ["a", "b"], "vectors": [[0.5, 0.5], [1, -1]]}`
	s, err := Decode(strings.NewReader(src), CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dimensions)
	assert.Equal(t, "b", s.Label(1))
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"empty document", "", ErrEmpty},
		{"no vectors", "dimensions: 2\n", ErrEmpty},
		{"ragged", "vectors:\n  - [1, 2]\n  - [1]\n", ErrInvalid},
		{"wrong dimensions", "dimensions: 3\nvectors:\n  - [1, 2]\n", ErrInvalid},
		{"label count", "labels: [a]\nvectors:\n  - [1]\n  - [2]\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), CompressionNone)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := Decode(strings.NewReader("vectors: [[1, oops"), CompressionNone)
	assert.Error(t, err)
}

func TestRoundTripCompressed(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatJSON} {
		for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, sampleSet(), f, c))

			got, err := Decode(&buf, c)
			require.NoError(t, err)
			assert.Equal(t, sampleSet(), got)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncodeReportsWriteFailure(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
		err := Encode(failingWriter{}, sampleSet(), FormatYAML, c)
		assert.Error(t, err, "compression %d", c)
	}
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	require.NoError(t, Save(path, sampleSet()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(raw), string(raw))

	var got Set
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, *sampleSet(), got)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"set.yaml", "set.yaml.zst", "set.yaml.lz4", "set.json", "set.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sampleSet()))

		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, sampleSet(), got, name)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, CompressionZSTD, CompressionFor("a.yaml.zst"))
	assert.Equal(t, CompressionZSTD, CompressionFor("a.ZSTD"))
	assert.Equal(t, CompressionLZ4, CompressionFor("a.json.lz4"))
	assert.Equal(t, CompressionNone, CompressionFor("a.yaml"))

	assert.Equal(t, FormatJSON, FormatFor("a.json"))
	assert.Equal(t, FormatJSON, FormatFor("a.JSON.zst"))
	assert.Equal(t, FormatYAML, FormatFor("a.yaml.lz4"))
	assert.Equal(t, FormatYAML, FormatFor("a.zst"))
}
