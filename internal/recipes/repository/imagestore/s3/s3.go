package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func New(ctx context.Context, cfg config.Storage) (ImageStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return ImageStore{}, fmt.Errorf("load aws config error: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}

		o.UsePathStyle = cfg.PathStyle
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return ImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// PutImage uploads the object and returns the URL it is served from. The
// SDK hashes the payload before sending, so body must be seekable.
func (is ImageStore) PutImage(ctx context.Context,
	key, contentType string, body io.ReadSeeker, size int64,
) (string, error) {
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek image error: %w", err)
	}

	_, err := is.client.PutObject(ctx, &s3.PutObjectInput{ //nolint:exhaustruct
		Bucket:        aws.String(is.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("put object error: %w", err)
	}

	return is.publicURL + "/" + key, nil
}
