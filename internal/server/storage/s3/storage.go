// Package s3 implements the remote key/value store on an S3-compatible
// object storage: one object per key, value as object body.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/iudanet/phrasesync/internal/server/storage"
)

//go:generate moq -out objectapi_mock.go . ObjectAPI

// ObjectAPI подмножество методов *s3.Client, которые использует Storage
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Config содержит параметры подключения к S3
type Config struct {
	Bucket       string
	Region       string
	Endpoint     string // пустой для AWS, адрес MinIO и т.п. для совместимых хранилищ
	AccessKey    string
	SecretKey    string
	Prefix       string
	UsePathStyle bool
}

// Storage represents S3 implementation of the remote key/value store
type Storage struct {
	client ObjectAPI
	bucket string
	prefix string
}

// New creates S3 client from cfg
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewWithClient creates storage over an existing client
func NewWithClient(client ObjectAPI, bucket, prefix string) *Storage {
	return &Storage{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// objectKey переводит ключ хранилища в имя объекта.
// Двоеточие допустимо в ключах S3, поэтому ключ используется как есть.
func (s *Storage) objectKey(key string) string {
	return s.prefix + key
}

// Get returns value stored under key
// Returns storage.ErrKeyNotFound if object doesn't exist
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", storage.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}

	return string(data), nil
}

// Set overwrites object stored under key
func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// Ping checks that bucket is accessible
func (s *Storage) Ping(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("failed to head bucket: %w", err)
	}
	return nil
}

// Close is a no-op: the S3 client holds no connections that need releasing
func (s *Storage) Close() error {
	return nil
}

// isNotFound распознает отсутствие объекта: GetObject возвращает NoSuchKey,
// некоторые совместимые хранилища отвечают просто NotFound
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey"
	}

	return false
}
