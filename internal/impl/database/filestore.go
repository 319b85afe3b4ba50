package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/drujensen/aichat/internal/domain/interfaces"
)

// FileStore reports diagnostics for the JSON file backend. The
// repositories own the files themselves; this only answers health
// queries about the data directory.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

// Kind names the backend for diagnostics.
func (f *FileStore) Kind() string {
	return "file"
}

// Ping verifies the data directory exists or can be created.
func (f *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dataDir); os.IsNotExist(err) {
		return os.MkdirAll(f.dataDir, 0755)
	} else if err != nil {
		return err
	}
	return nil
}

// Collections lists the JSON files present in the data directory,
// without their extension.
func (f *FileStore) Collections(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.dataDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}

var _ interfaces.StoreDiagnostics = (*FileStore)(nil)
