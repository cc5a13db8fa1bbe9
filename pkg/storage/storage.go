package storage

import (
	"context"
	"io"
	"strings"
)

// Storage defines read access to stored files.
type Storage interface {
	// Get retrieves a file by key.
	// The caller is responsible for closing the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// S3Scheme is the key prefix that routes a Get to object storage.
const S3Scheme = "s3://"

// IsRemote reports whether key addresses object storage.
func IsRemote(key string) bool {
	return strings.HasPrefix(key, S3Scheme)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the default bucket. When set, keys given without an s3://
	// prefix are read from it instead of the local filesystem (optional).
	Bucket string `mapstructure:"bucket"`

	// AccessKey is the AWS access key ID. Leave empty to use the default credential chain.
	AccessKey string `mapstructure:"access_key"`

	// SecretKey is the AWS secret access key. Required when AccessKey is set.
	SecretKey string `mapstructure:"secret_key"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `mapstructure:"endpoint"`

	// Region is the AWS region (default: us-east-1).
	Region string `mapstructure:"region"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `mapstructure:"path_style"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

// validate checks that static credentials are either complete or absent.
func (c *Config) validate() error {
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return ErrInvalidConfig
	}
	return nil
}

// staticCredentials reports whether the config carries its own key pair.
func (c *Config) staticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}
