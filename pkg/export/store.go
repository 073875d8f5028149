package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/goey/internal/errors"
)

// Store receives exported files.
type Store interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
}

// DiskStore writes files into a directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: %w", errors.New("G020").Wrap(err))
	}
	return &DiskStore{dir: dir}, nil
}

// Dir is the output directory.
func (s *DiskStore) Dir() string { return s.dir }

// Put writes name under the directory.
func (s *DiskStore) Put(ctx context.Context, name, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0644)
}

// S3API is the subset of the S3 client S3Store uses.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads files to a bucket under a key prefix.
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates an S3 store. prefix is joined to every key with a
// single slash.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// NewS3StoreFromEnv loads AWS credentials from the environment and shared
// config. An empty region uses the configured default.
func NewS3StoreFromEnv(ctx context.Context, region, bucket, prefix string) (*S3Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("export: load aws config: %w", err)
	}
	return NewS3Store(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// Key is the object key for name.
func (s *S3Store) Key(name string) string { return s.prefix + name }

// Put uploads name.
func (s *S3Store) Put(ctx context.Context, name, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s.Key(name)),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// StoreConfig selects a store by kind.
type StoreConfig struct {
	// Kind is "disk" or "s3".
	Kind   string
	Dir    string
	Bucket string
	Prefix string
	Region string
}

// OpenStore opens the store cfg names.
func OpenStore(ctx context.Context, cfg StoreConfig) (Store, error) {
	switch cfg.Kind {
	case "", "disk":
		return NewDiskStore(cfg.Dir)
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("export: %w", errors.New("G010").WithDetail("s3 store needs a bucket"))
		}
		return NewS3StoreFromEnv(ctx, cfg.Region, cfg.Bucket, cfg.Prefix)
	}
	return nil, fmt.Errorf("export: %w", errors.New("G021").WithDetailf("%q", cfg.Kind).
		WithSuggestion("Use disk or s3"))
}
