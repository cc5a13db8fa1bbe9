package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Storage using S3-compatible object storage.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// NewS3 creates a new S3Storage with the given configuration.
// Static credentials are used when present, otherwise the default AWS
// credential chain is loaded.
func NewS3(ctx context.Context, cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	endpoint := func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	}

	if cfg.staticCredentials() {
		client := s3.New(s3.Options{}, func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		}, endpoint)
		return &S3Storage{client: client, cfg: cfg}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg, endpoint),
		cfg:    cfg,
	}, nil
}

// Get retrieves an object. key is either an s3://bucket/key URI or a bare
// object key inside the configured bucket.
func (s *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	bucket, objectKey, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}

	return output.Body, nil
}

func (s *S3Storage) resolve(key string) (string, string, error) {
	if IsRemote(key) {
		return ParseURI(key)
	}
	if s.cfg.Bucket == "" {
		return "", "", fmt.Errorf("%w: no bucket for key %q", ErrInvalidURI, key)
	}
	objectKey := strings.TrimPrefix(key, "/")
	if objectKey == "" {
		return "", "", fmt.Errorf("%w: empty key", ErrInvalidURI)
	}
	return s.cfg.Bucket, objectKey, nil
}

// ParseURI splits an s3://bucket/key URI into bucket and object key.
func ParseURI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: missing object key in %s", ErrInvalidURI, uri)
	}

	return u.Host, key, nil
}

var _ Storage = (*S3Storage)(nil)
