package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Config contains minimal configuration for the image bucket client.
// Values are optional and fall back to the standard AWS config chain.
type Config struct {
	Region string
	// Profile selects a named shared config/credentials profile.
	Profile string
	// UsePathStyle forces path-style addressing (S3-compatible providers).
	UsePathStyle bool

	Bucket string
	Prefix string
	// PublicBaseURL is the externally reachable base for uploaded objects.
	// When empty the virtual-hosted S3 URL is derived from bucket+region.
	PublicBaseURL string
}

// ImageStore uploads admin images (banner, ads) to an S3 bucket and hands
// back the public URL the site embeds.
type ImageStore struct {
	client *s3.Client
	cfg    Config
}

// NewImageStore creates a store using the default AWS configuration chain
// with optional overrides from cfg.
func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	if cfg.Prefix != "" {
		cfg.Prefix = strings.Trim(cfg.Prefix, "/") + "/"
	}
	return &ImageStore{client: client, cfg: cfg}, nil
}

// NewImageStoreFromEnv returns a store when S3_BUCKET is configured, or
// nil when it is not; image upload endpoints are then disabled.
// Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_PUBLIC_BASE_URL,
// S3_USE_PATH_STYLE=true.
func NewImageStoreFromEnv(ctx context.Context) *ImageStore {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	store, err := NewImageStore(ctx, Config{
		Region:        strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:       strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle:  strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
		Bucket:        bucket,
		Prefix:        strings.TrimSpace(os.Getenv("S3_PREFIX")),
		PublicBaseURL: strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (image uploads disabled)", err)
		return nil
	}
	return store
}

// Upload writes the image under a timestamped, sanitized key and returns
// its public URL.
func (s *ImageStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s%d-%s", s.cfg.Prefix, time.Now().UnixMilli(), SanitizeFileName(filename))

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	in.CacheControl = aws.String("public, max-age=86400")

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

// Delete removes the object at key.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

// Exists returns true if the object exists; false on a 404/NotFound.
func (s *ImageStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return false, nil
	}

	return false, err
}

func (s *ImageStore) publicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	region := s.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, region, key)
}
