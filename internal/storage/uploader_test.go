package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"schedule-service/internal/domain"
	"schedule-service/internal/metrics"
)

type stubS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (s *stubS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.input = params
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadWritesIndentedJSON(t *testing.T) {
	stub := &stubS3{}
	uploader := newUploader(stub, Config{Bucket: "csec-schedule-api", Key: "schedule.json"}, nil, metrics.NewRecorder())

	payload := domain.NewPublishedSchedule([]domain.Game{
		{GameID: "1", Date: "2025-11-01", Time: "19:00", League: domain.LeagueNHL},
	}, "2025-11-01T12:00:00Z")

	if err := uploader.Upload(context.Background(), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.input == nil {
		t.Fatal("PutObject never called")
	}
	if *stub.input.Bucket != "csec-schedule-api" || *stub.input.Key != "schedule.json" {
		t.Fatalf("target = %s/%s", *stub.input.Bucket, *stub.input.Key)
	}
	if *stub.input.ContentType != "application/json" {
		t.Fatalf("content type = %s", *stub.input.ContentType)
	}
	if *stub.input.CacheControl != "max-age=3600" {
		t.Fatalf("cache control = %s", *stub.input.CacheControl)
	}

	raw, err := io.ReadAll(stub.input.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(raw), "{\n  \"success\": true,") {
		t.Fatalf("body not two-space indented: %s", raw[:40])
	}

	var round domain.PublishedSchedule
	if err := json.Unmarshal(raw, &round); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !round.Success || round.Count != 1 || round.LastUpdated != "2025-11-01T12:00:00Z" {
		t.Fatalf("round trip = %+v", round)
	}
}

func TestUploadEmptySchedule(t *testing.T) {
	stub := &stubS3{}
	uploader := newUploader(stub, Config{Bucket: "b", Key: "k"}, nil, nil)

	if err := uploader.Upload(context.Background(), domain.NewPublishedSchedule(nil, "2025-11-01T12:00:00Z")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := io.ReadAll(stub.input.Body)
	if !strings.Contains(string(raw), "\"data\": []") {
		t.Fatalf("data not serialized as []: %s", raw)
	}
}

func TestUploadPropagatesPutError(t *testing.T) {
	stub := &stubS3{err: errors.New("access denied")}
	uploader := newUploader(stub, Config{Bucket: "b", Key: "k"}, nil, nil)

	err := uploader.Upload(context.Background(), domain.NewPublishedSchedule(nil, ""))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "b/k") {
		t.Fatalf("error = %v", err)
	}
}
