// Package s3 implements blob storage on any S3-compatible endpoint
// (MinIO included).
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"edu-center/config"
	"edu-center/logger"
	"edu-center/util/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client talks to an S3-compatible blob store.
type Client struct {
	s3Client  *s3.Client
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewClient(cfg *config.StorageConfig) (*Client, error) {
	if cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "" || cfg.S3Bucket == "" || cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("S3 storage requires EDU_S3_ENDPOINT, EDU_S3_BUCKET, EDU_S3_ACCESS_KEY_ID and EDU_S3_SECRET_ACCESS_KEY")
	}

	scheme := "http"
	if cfg.S3UseSSL {
		scheme = "https"
	}
	endpointURL := fmt.Sprintf("%s://%s", scheme, cfg.S3Endpoint)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s3Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.S3Bucket)}); err != nil {
		return nil, fmt.Errorf("bucket %s is not reachable: %w", cfg.S3Bucket, err)
	}

	publicURL := cfg.S3PublicBaseURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", endpointURL, cfg.S3Bucket)
	}

	return &Client{
		s3Client:  s3Client,
		uploader:  manager.NewUploader(s3Client),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (c *Client) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	logger.Debugf("uploaded %s (%s) to bucket %s", key, common.FormatSize(size), c.bucket)
	return key, nil
}

func (c *Client) Resolve(ref string) string {
	return c.publicURL + "/" + ref
}

func (c *Client) Delete(ctx context.Context, ref string) error {
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(ref),
	})
	return err
}
