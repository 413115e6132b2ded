package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/webfolio/webfolio/internal/config"
)

// ErrIncompleteS3Config is returned when bucket, region or keys are missing.
var ErrIncompleteS3Config = errors.New("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")

// s3API is the part of the s3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 stores media in a bucket.
type S3 struct {
	client  s3API
	bucket  string
	baseURL string
}

// NewS3 builds a client with static credentials from cfg.S3.
func NewS3(_ context.Context, cfg config.Media) (*S3, error) {
	opts := cfg.S3

	if opts.Bucket == "" || opts.Region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, ErrIncompleteS3Config
	}

	s3Opts := s3.Options{
		Region: opts.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
		UsePathStyle: opts.PathStyle,
	}

	endpoint := strings.TrimRight(opts.Endpoint, "/")
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		s3Opts.BaseEndpoint = aws.String(endpoint)
	}

	return newS3(s3.New(s3Opts), opts.Bucket, publicBase(cfg, endpoint)), nil
}

func newS3(client s3API, bucket, baseURL string) *S3 {
	return &S3{client: client, bucket: bucket, baseURL: baseURL}
}

// publicBase is the URL prefix objects are reachable under.
// An absolute Media.URLPrefix, e.g. a CDN, wins over the bucket address.
func publicBase(cfg config.Media, endpoint string) string {
	if strings.HasPrefix(cfg.URLPrefix, "http://") || strings.HasPrefix(cfg.URLPrefix, "https://") {
		return cfg.URLPrefix
	}

	switch {
	case endpoint != "":
		return fmt.Sprintf("%s/%s", endpoint, cfg.S3.Bucket)
	case cfg.S3.PathStyle:
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s", cfg.S3.Region, cfg.S3.Bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region)
	}
}

// Save implements Store.
func (s *S3) Save(ctx context.Context, dir, filename string, r io.Reader, contentType string) (string, error) {
	key := newKey(dir, filename)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "s3 upload failed")
	}

	return key, nil
}

// Delete implements Store.
func (s *S3) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "s3 delete failed")
	}

	return nil
}

// URL implements Store.
func (s *S3) URL(key string) string {
	return joinURL(s.baseURL, key)
}
