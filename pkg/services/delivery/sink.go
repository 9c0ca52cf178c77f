package delivery

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink persists a finished export and returns where it was stored.
// A failed delivery leaves nothing behind at the destination.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type fileSink struct {
	name string
	dir  string
}

func NewFileSink(name, dir string) Sink {
	return &fileSink{name: name, dir: dir}
}

func (s *fileSink) Name() string {
	return s.name
}

func (s *fileSink) Deliver(ctx context.Context, filename, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid file name %q", filename)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+filename+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	// removing after a successful rename is a no-op
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}

	target := filepath.Join(s.dir, filename)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}
	return target, nil
}

// PutObjectAPI is the part of the S3 client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Sink struct {
	name   string
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3Sink(name string, client PutObjectAPI, bucket, prefix string) Sink {
	return &s3Sink{name: name, client: client, bucket: bucket, prefix: prefix}
}

func (s *s3Sink) Name() string {
	return s.name
}

func (s *s3Sink) Deliver(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := path.Join(s.prefix, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", s.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
