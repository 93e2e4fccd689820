// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// deletePrefixBatchSize caps how many keys one prefix-delete round removes.
const deletePrefixBatchSize = 1000

// S3Config holds connection settings for an S3-compatible bucket.
type S3Config struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint for R2/MinIO-style providers.
	Endpoint string
	// PublicURL is the CDN or bucket base URL blobs are served from.
	PublicURL string
}

// S3Store keeps blobs in an S3-compatible bucket. Credentials come from the
// standard AWS environment variables.
type S3Store struct {
	svc       *s3.S3
	uploader  *s3manager.Uploader
	bucket    string
	publicURL string
}

// NewS3Store creates a bucket-backed blob store.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("blob: create AWS session: %w", err)
	}

	return &S3Store{
		svc:       s3.New(sess),
		uploader:  s3manager.NewUploader(sess),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Put implements [Store].
func (s *S3Store) Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	cleaned := strings.Trim(key, "/")
	if cleaned == "" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("blob: invalid key %q", key)
	}

	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("blob: upload %s: %w", cleaned, err)
	}

	return s.publicURL + "/" + cleaned, nil
}

// Delete implements [Store].
func (s *S3Store) Delete(ctx context.Context, url string) error {
	if !s.Owns(url) {
		return fmt.Errorf("blob: refusing to delete foreign URL %q", url)
	}

	key := strings.TrimPrefix(strings.TrimPrefix(url, s.publicURL), "/")
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("blob: delete %s: %w", key, err)
	}
	return nil
}

// DeletePrefix implements [Store]. Objects are removed in batches until the
// listing comes back empty.
func (s *S3Store) DeletePrefix(ctx context.Context, prefix string) error {
	cleaned := strings.Trim(prefix, "/")
	if cleaned == "" {
		return fmt.Errorf("blob: refusing to delete empty prefix")
	}

	for {
		listing, err := s.svc.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
			Bucket:  aws.String(s.bucket),
			Prefix:  aws.String(cleaned + "/"),
			MaxKeys: aws.Int64(deletePrefixBatchSize),
		})
		if err != nil {
			return fmt.Errorf("blob: list prefix %s: %w", cleaned, err)
		}
		if len(listing.Contents) == 0 {
			return nil
		}

		objects := make([]*s3.ObjectIdentifier, 0, len(listing.Contents))
		for _, object := range listing.Contents {
			objects = append(objects, &s3.ObjectIdentifier{Key: object.Key})
		}

		_, err = s.svc.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &s3.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("blob: delete prefix %s: %w", cleaned, err)
		}

		if !aws.BoolValue(listing.IsTruncated) {
			return nil
		}
	}
}

// Owns implements [Store].
func (s *S3Store) Owns(url string) bool {
	return s.publicURL != "" && strings.HasPrefix(url, s.publicURL+"/")
}

// Scannable implements [Store]. Bucket contents are invisible to the local
// folder scan.
func (*S3Store) Scannable() bool { return false }
