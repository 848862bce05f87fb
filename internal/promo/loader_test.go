package promo

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSeedFile writes a gzipped JSON-lines seed file and returns its path.
func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "promos.jsonl.gz")
	file, err := os.Create(path)
	require.NoError(t, err)

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	return path
}

func TestFileLoader_Load(t *testing.T) {
	content := `{"code": "SAVE10", "description": "10% off", "percent_off": 10, "active": true}
{"code": "FLAT5", "amount_off": 5.0}

{"code": "EXPIRED20", "percent_off": 20, "active": false}
`
	path := writeSeedFile(t, content)

	loader := NewFileLoader(zerolog.Nop())
	promos, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, promos, 3)
	assert.Equal(t, "SAVE10", promos[0].Code)
	require.NotNil(t, promos[0].PercentOff)
	assert.Equal(t, 10, *promos[0].PercentOff)

	assert.Equal(t, "FLAT5", promos[1].Code)
	require.NotNil(t, promos[1].AmountOff)
	assert.Equal(t, 5.0, *promos[1].AmountOff)
	assert.Nil(t, promos[1].Active)

	assert.Equal(t, "EXPIRED20", promos[2].Code)
	require.NotNil(t, promos[2].Active)
	assert.False(t, *promos[2].Active)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.jsonl.gz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open promo seed file")
}

func TestFileLoader_Load_NotGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jsonl.gz")
	require.NoError(t, os.WriteFile(path, []byte(`{"code": "SAVE10"}`), 0o644))

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}

func TestFileLoader_Load_MalformedLine(t *testing.T) {
	content := `{"code": "SAVE10"}
{not json}
`
	path := writeSeedFile(t, content)

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid promo document")
	assert.Contains(t, err.Error(), ":2")
}

func TestFileLoader_Load_ContextCancelled(t *testing.T) {
	path := writeSeedFile(t, `{"code": "SAVE10"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_Load_EmptyFile(t *testing.T) {
	path := writeSeedFile(t, "")

	loader := NewFileLoader(zerolog.Nop())
	promos, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, promos)
}
