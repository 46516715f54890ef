package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agrowatch/awd-atlas-cli/internal/properties"
)

type entry[T any] struct {
	Data      T         `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// FileCache stores JSON-encoded values under data/<subDir>, keyed by a hash
// of the request parameters. Used to avoid re-fetching climate series.
type FileCache[T any] struct {
	dir string
}

func NewFileCache[T any](subDir string) *FileCache[T] {
	return &FileCache[T]{dir: filepath.Join(properties.RootPath(), "data", subDir)}
}

// Key derives a stable cache key from arbitrary request parameters.
func (fc *FileCache[T]) Key(params ...interface{}) string {
	h := sha1.New()
	for _, p := range params {
		fmt.Fprintf(h, "%v_", p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (fc *FileCache[T]) Get(key string) (T, bool) {
	var zero T
	data, err := os.ReadFile(filepath.Join(fc.dir, key+".json"))
	if err != nil {
		return zero, false
	}
	var e entry[T]
	if err := json.Unmarshal(data, &e); err != nil {
		return zero, false
	}
	return e.Data, true
}

func (fc *FileCache[T]) Set(key string, data T) error {
	if err := os.MkdirAll(fc.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	jsonData, err := json.Marshal(entry[T]{Data: data, CreatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	cacheFile := filepath.Join(fc.dir, key+".json")
	tmpFile := cacheFile + ".tmp"
	if err := os.WriteFile(tmpFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp cache file: %w", err)
	}
	if err := os.Rename(tmpFile, cacheFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp cache file: %w", err)
	}
	return nil
}
