// Package bucket publishes rendered report documents to S3 compatible storage.
package bucket

import (
	"fmt"

	"github.com/jekabolt/grbpwr-pnl/internal/dependency"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3_access_key"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key"`
	S3Endpoint        string `mapstructure:"s3_endpoint"`
	S3BucketName      string `mapstructure:"s3_bucket_name"`
	S3BucketLocation  string `mapstructure:"s3_bucket_location"`
	BaseFolder        string `mapstructure:"base_folder"`
	// PublicURL replaces the https://<bucket>.<endpoint> prefix of returned URLs.
	PublicURL    string `mapstructure:"public_url"`
	Insecure     bool   `mapstructure:"insecure"`
	CacheControl string `mapstructure:"cache_control"`
}

// Enabled reports whether publishing is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.S3Endpoint != ""
}

type Bucket struct {
	*minio.Client
	*Config
}

// Init connects the client. No request is made until the first upload.
func (c *Config) Init() (dependency.FileStore, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: !c.Insecure,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create s3 client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}
