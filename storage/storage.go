package storage

import (
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Storage hands out time-limited download links for report files kept in
// an S3 bucket. The bucket itself is owned by an external pipeline; this
// service only signs URLs.
type S3Storage struct {
	svc    *s3.S3
	bucket string
}

// NewFromEnv returns nil when AWS_S3_BUCKET is not configured, so callers
// can fall back to serving plain object keys in development.
func NewFromEnv() *S3Storage {
	bucket := os.Getenv("AWS_S3_BUCKET")
	if bucket == "" {
		return nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
	})
	if err != nil {
		log.Printf("Failed to create AWS session: %v", err)
		return nil
	}

	return &S3Storage{
		svc:    s3.New(sess),
		bucket: bucket,
	}
}

// PresignDownload signs a GET for the object, forcing attachment
// disposition so browsers download instead of rendering.
func (s *S3Storage) PresignDownload(key string, expiry time.Duration) (string, error) {
	req, _ := s.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String("attachment"),
	})
	return req.Presign(expiry)
}
