package entities

import "time"

// GeneratedDocument is the persisted handle of a rendered PDF.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StoragePath is opaque to the rest of the system: the storage backend
// may rename on collision, so nothing must assume filename stability.
type GeneratedDocument struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
