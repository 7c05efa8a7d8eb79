package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// PutObjectAPI is the part of *s3.Client used by S3Storage.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Region    string
	Bucket    string
	KeyPrefix string
	// Endpoint targets an S3 compatible store (e.g. MinIO) with path-style addressing.
	Endpoint string
	// PublicBaseURL replaces the bucket URL in returned links, e.g. a CDN.
	PublicBaseURL string
}

type S3Storage struct {
	client  PutObjectAPI
	options S3Options
	now     func() time.Time
}

func NewS3Storage(ctx context.Context, options S3Options) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(options.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StorageWithClient(client, options), nil
}

func NewS3StorageWithClient(client PutObjectAPI, options S3Options) *S3Storage {
	return &S3Storage{client: client, options: options, now: time.Now}
}

func (s *S3Storage) Store(ctx context.Context, field string, data []byte, originalName string) (string, error) {
	key := fmt.Sprintf("%s%d-%s", s.options.KeyPrefix, s.now().UnixMilli(), cleanName(originalName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.options.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put %s object %s to bucket %s: %w", field, key, s.options.Bucket, err)
	}

	return s.objectURL(key), nil
}

func (s *S3Storage) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	escaped := strings.Join(segments, "/")

	switch {
	case s.options.PublicBaseURL != "":
		return strings.TrimRight(s.options.PublicBaseURL, "/") + "/" + escaped
	case s.options.Endpoint != "":
		return strings.TrimRight(s.options.Endpoint, "/") + "/" + s.options.Bucket + "/" + escaped
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.options.Bucket, s.options.Region, escaped)
	}
}
