package interfaces

import "context"

// IFileStorage abstracts the document storage backend (local disk or S3).
//
// Store resolves filename collisions on its own, typically by appending a
// numeric suffix, and returns the path actually used; callers must treat
// the returned path as opaque and never assume filename stability.
type IFileStorage interface {
	Store(ctx context.Context, data []byte, fileName, folderKey string) (string, error)
	Load(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}
