package storage

import (
	"alcyxob/fitness-tracker/internal/config"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// s3Storage implements the FileStorage interface using an S3-compatible backend.
type s3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (FileStorage, error) {
	opts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	// Path-style addressing is required by most S3-compatible services (like MinIO).
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(endpointURL(cfg))
		}
		o.UsePathStyle = true
	})

	log.WithFields(log.Fields{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	}).Info("S3 storage initialized")

	return &s3Storage{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
	}, nil
}

// endpointURL adds a scheme to bare host:port endpoints according to UseSSL.
func endpointURL(cfg config.S3Config) string {
	if strings.Contains(cfg.Endpoint, "://") {
		return cfg.Endpoint
	}
	if cfg.UseSSL {
		return "https://" + cfg.Endpoint
	}
	return "http://" + cfg.Endpoint
}

func (s *s3Storage) PutObject(ctx context.Context, objectKey, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectKey),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Body:          bytes.NewReader(body),
	})
	if err != nil {
		log.Errorf("put object '%s' into bucket '%s': %v", objectKey, s.bucketName, err)
		return err
	}
	log.Debugf("stored object '%s' (%d bytes)", objectKey, len(body))
	return nil
}

// GeneratePresignedDownloadURL creates a temporary URL for downloading (GET).
func (s *s3Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		log.Errorf("presign GET for key '%s': %v", objectKey, err)
		return "", err
	}
	return req.URL, nil
}

// DeleteObject removes an object from the S3 bucket.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Errorf("delete object '%s' from bucket '%s': %v", objectKey, s.bucketName, err)
		return err
	}
	log.Infof("deleted object '%s' from bucket '%s'", objectKey, s.bucketName)
	return nil
}
