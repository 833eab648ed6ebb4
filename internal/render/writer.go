package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rf2owl/internal/ontology"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// RenderBytes renders m fully in memory.
func RenderBytes(s Serializer, m *ontology.Model, h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf, m, h); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes rendered output to path, creating its directory if needed.
// The path "-" writes to stdout instead.
func WriteFile(path string, data []byte, stdout io.Writer) error {
	if path == Stdout {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}

		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
