package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"autoflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrMissingDocumentBucket = errors.New("missing DOCUMENT_STORAGE_BUCKET")

// S3Storage keeps rendered documents in an S3 bucket. The returned path is
// the object key.
//
// Collision handling mirrors LocalStorage: an existing key gets a numeric
// suffix before the extension instead of being overwritten.
type S3Storage struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IFileStorage = (*S3Storage)(nil)

func NewS3Storage(cfg aws.Config) (*S3Storage, error) {
	bucket := os.Getenv("DOCUMENT_STORAGE_BUCKET")
	if bucket == "" {
		return nil, ErrMissingDocumentBucket
	}
	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (s *S3Storage) Store(ctx context.Context, data []byte, fileName, folderKey string) (string, error) {
	key := path.Join(folderKey, fileName)
	ext := path.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	for i := 1; ; i++ {
		exists, err := s.exists(ctx, key)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		key = path.Join(folderKey, fmt.Sprintf("%s-%d%s", base, i, ext))
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", err
	}
	log.Printf("[storage][s3] stored bucket=%s key=%s size=%d", s.bucket, key, len(data))
	return key, nil
}

func (s *S3Storage) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
