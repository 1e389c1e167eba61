package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gbif-snap/internal/record"
)

// copyChunkSize bounds memory while streaming image bodies to disk.
const copyChunkSize = 8 * 1024

// Store writes snapshot outputs under two directories: one for images, one
// for metadata documents.
type Store struct {
	imageDir    string
	metadataDir string
	logger      *log.Logger
}

func New(imageDir, metadataDir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	return &Store{
		imageDir:    imageDir,
		metadataDir: metadataDir,
		logger:      logger,
	}
}

// SaveImage streams r into <imageDir>/<id>.<ext>, creating parent
// directories as needed, and returns the written path. A mid-stream failure
// can leave a truncated file behind; writes are not atomic.
func (s *Store) SaveImage(id, ext string, r io.Reader) (string, error) {
	path := filepath.Join(s.imageDir, fmt.Sprintf("%s.%s", id, ext))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, copyChunkSize)
	if _, err := io.CopyBuffer(f, r, buf); err != nil {
		return "", fmt.Errorf("write image %s: %w", path, err)
	}

	s.logger.Printf("image saved to %s", path)
	return path, nil
}

// SaveMetadata writes m as two-space-indented JSON to
// <metadataDir>/<id>.json, overwriting any previous run's output.
func (s *Store) SaveMetadata(id string, m record.Metadata) (string, error) {
	path := filepath.Join(s.metadataDir, id+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create metadata dir: %w", err)
	}

	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write metadata %s: %w", path, err)
	}

	s.logger.Printf("metadata saved to %s", path)
	return path, nil
}
