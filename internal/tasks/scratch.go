package tasks

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeScratch copies the uploaded bytes into a scoped file under dir so the
// extraction binaries can read it from disk. The returned cleanup removes the
// file and is safe to call more than once.
func writeScratch(dir, filename string, content []byte) (string, func(), error) {
	if dir == "" {
		dir = os.TempDir()
	}
	ext := filepath.Ext(filename)
	f, err := os.CreateTemp(dir, "dist-upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close scratch file: %w", err)
	}
	return path, cleanup, nil
}
