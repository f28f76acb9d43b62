package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"b2bpro-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3Client stores image assets in an S3-compatible bucket.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
type s3Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Client builds a storage client from the S3_* environment variables.
func NewS3Client() (Client, error) {
	bucket := config.GetEnv("S3_BUCKET", "")
	region := config.GetEnv("S3_REGION", "us-east-1")
	key := config.GetEnv("S3_KEY", "")
	secret := config.GetEnv("S3_SECRET", "")
	endpoint := config.GetEnv("S3_ENDPOINT", "") // leave empty for real AWS
	baseURL := strings.TrimRight(config.GetEnv("S3_URL", ""), "/")

	if bucket == "" {
		return nil, fmt.Errorf("storage: S3_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if key != "" && secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &s3Client{
		client:  s3.NewFromConfig(cfg, clientOpts...),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (c *s3Client) UploadImage(file multipart.File, folder, filename, contentType string) (string, error) {
	key := folder + "/" + uuid.New().String() + path.Ext(filename)

	_, err := c.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}

	return c.baseURL + "/" + key, nil
}

func (c *s3Client) DeleteFile(objectPath string) error {
	_, err := c.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectPath),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", objectPath, err)
	}
	return nil
}

// ObjectPath extracts the bucket-relative key from a stored asset URL so a
// record's image can be deleted alongside the record.
func ObjectPath(assetURL string) (string, error) {
	u, err := url.Parse(assetURL)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}
