package storage

import (
	"context"
	"log"
	"os"
	"strings"

	"autoflow/internal/infrastructure/database"
	"autoflow/internal/usecase/interfaces"
)

// FromEnv selects the document storage backend.
//
// DOCUMENT_STORAGE_BACKEND=s3 uses S3 (requires DOCUMENT_STORAGE_BUCKET);
// anything else falls back to local disk.
func FromEnv(ctx context.Context) (interfaces.IFileStorage, error) {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("DOCUMENT_STORAGE_BACKEND")))
	if backend == "s3" {
		cfg, err := database.NewDynamoDBConfigFromEnv(ctx)
		if err != nil {
			return nil, err
		}
		s3store, err := NewS3Storage(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[storage][factory] using s3 backend")
		return s3store, nil
	}
	log.Printf("[storage][factory] using local backend")
	return NewLocalStorage(), nil
}
