// Package storage publishes the aggregated schedule as a public JSON blob.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"schedule-service/internal/domain"
	"schedule-service/internal/logging"
	"schedule-service/internal/metrics"
)

// Downstream readers poll the blob; an hour of caching matches the job cadence.
const cacheControl = "max-age=3600"

// s3API is the slice of the S3 client the uploader needs; tests inject stubs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config names the object-storage target.
type Config struct {
	Bucket string
	Key    string
	Region string
}

// Uploader writes the published schedule to object storage.
type Uploader struct {
	client  s3API
	bucket  string
	key     string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewUploader builds an Uploader backed by the default AWS credential chain.
func NewUploader(ctx context.Context, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	return newUploader(s3.NewFromConfig(awsCfg), cfg, logger, recorder), nil
}

func newUploader(client s3API, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Uploader {
	return &Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		key:     cfg.Key,
		logger:  logger,
		metrics: recorder,
	}
}

// Upload writes the payload as indented JSON with a one-hour cache directive.
func (u *Uploader) Upload(ctx context.Context, payload domain.PublishedSchedule) error {
	start := time.Now()

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode schedule: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(u.key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String(cacheControl),
	})
	if u.metrics != nil {
		u.metrics.RecordUpload(time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("storage: put %s/%s: %w", u.bucket, u.key, err)
	}

	logging.Info(u.logger, "schedule uploaded",
		slog.String(logging.FieldBucket, u.bucket),
		slog.String(logging.FieldKey, u.key),
		slog.Int(logging.FieldCount, payload.Count),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}
