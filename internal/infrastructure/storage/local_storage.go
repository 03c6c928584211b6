package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"autoflow/internal/usecase/interfaces"
)

const defaultLocalStorageRoot = "./data/documents"

// LocalStorage keeps rendered documents on the local filesystem under a
// configurable root directory.
//
// Store never overwrites: when fileName already exists inside folderKey a
// numeric suffix (-1, -2, ...) is appended before the extension until a
// free name is found. The returned path is the one to persist; callers
// must not assume it equals root/folderKey/fileName.
type LocalStorage struct {
	root string
}

var _ interfaces.IFileStorage = (*LocalStorage)(nil)

func NewLocalStorage() *LocalStorage {
	root := os.Getenv("DOCUMENT_STORAGE_PATH")
	if root == "" {
		root = defaultLocalStorageRoot
	}
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Store(ctx context.Context, data []byte, fileName, folderKey string) (string, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(folderKey))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(dir, fileName)
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		} else if err != nil && !os.IsExist(err) {
			return "", err
		}
		target = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	log.Printf("[storage][local] stored path=%s size=%d", target, len(data))
	return target, nil
}

func (s *LocalStorage) Load(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
