// Package storage persists submission attachments on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/marchemgmt/marche-api/internal/config"
)

var unsafeNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._\-]`)

type LocalFileStore struct {
	baseDir string
	baseURL string
}

func NewLocalFileStore(conf *config.UploadsConfig) (*LocalFileStore, error) {
	baseDir := conf.BaseDir
	if baseDir == "" {
		baseDir = "./uploads"
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalFileStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
	}, nil
}

// Save writes the content under a collision-free name and returns the stored
// path plus the public URL.
func (s *LocalFileStore) Save(fileName string, content io.Reader) (string, string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFileName(fileName))
	path := filepath.Join(s.baseDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("os.Create -> %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", "", fmt.Errorf("io.Copy -> %w", err)
	}

	url := name
	if s.baseURL != "" {
		url = s.baseURL + "/" + name
	}

	return path, url, nil
}

func (s *LocalFileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// sanitizeFileName strips directory components and characters that are not
// filesystem-safe across platforms.
func sanitizeFileName(name string) string {
	base := filepath.Base(name)
	safe := unsafeNamePattern.ReplaceAllString(base, "_")
	if safe == "" || safe == "." || safe == ".." {
		safe = "upload"
	}

	return safe
}
