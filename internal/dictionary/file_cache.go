package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileCache stores raw API responses as one JSON file per word.
type FileCache struct {
	rootDir string
}

// NewFileCache creates a cache rooted at cacheDirectory.
func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{rootDir: cacheDirectory}
}

func (cache *FileCache) filePath(word string) string {
	return filepath.Join(cache.rootDir, word+".json")
}

// cache returns the cached payload for word, calling fetch and storing the
// result on a miss.
func (cache *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(word)
	if contents, err := os.ReadFile(localFilePath); err == nil {
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary entry > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll(%s) > %w", cache.rootDir, err)
	}
	if err := os.WriteFile(localFilePath, contents, 0644); err != nil {
		return contents, fmt.Errorf("os.WriteFile(%s) > %w", localFilePath, err)
	}
	return contents, nil
}
