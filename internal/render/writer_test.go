package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	data := []byte("(define-primitive-concept :A)\n")

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "nested", "snomed.krss")

		require.NoError(t, WriteFile(path, data, nil))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snomed.krss")
		require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0o644))

		require.NoError(t, WriteFile(path, data, nil))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("dash writes to stdout", func(t *testing.T) {
		var stdout bytes.Buffer

		require.NoError(t, WriteFile(Stdout, data, &stdout))
		assert.Equal(t, data, stdout.Bytes())
	})

	t.Run("stdout failure", func(t *testing.T) {
		err := WriteFile(Stdout, data, failingWriter{})
		require.ErrorContains(t, err, "writing to stdout")
	})
}

func TestRenderBytes(t *testing.T) {
	s, err := New(ModeKRSS)
	require.NoError(t, err)

	m := fixtureModel(t)

	got, err := RenderBytes(s, m, testHeader())
	require.NoError(t, err)
	assert.Equal(t, renderMode(t, ModeKRSS, m), string(got))

	_, err = RenderBytes(s, m, Header{})
	require.Error(t, err)
}
