// File: s3.go
// Title: S3 Backend
// Description: Stores each key as one object below a prefix in an S3 or
//              S3-compatible bucket.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation

package defaults

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	gperror "github.com/msto63/gopress/core/error"
)

// S3API is the subset of *s3.Client used by S3Store
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds construction parameters for NewS3StoreFromConfig. Region
// and credentials fall back to the default AWS chain.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string // optional, e.g. a MinIO URL
	PathStyle bool
}

// S3Store implements Store on top of S3 objects
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates a store on an existing client
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// NewS3StoreFromConfig loads the default AWS configuration and creates a
// client for cfg
func NewS3StoreFromConfig(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, gperror.New("s3 bucket required").
			WithCode(gperror.CodeConfigError).
			WithOperation("defaults.NewS3StoreFromConfig")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, gperror.Wrap(err, "failed to load aws config").
			WithCode(gperror.CodeConfigError).
			WithOperation("defaults.NewS3StoreFromConfig")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3Store(client, cfg.Bucket, cfg.Prefix), nil
}

func (s *S3Store) objectKey(key string) string {
	return s.prefix + key
}

// Get implements Store
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, s3Error(err, "failed to get object", "defaults.S3Store.Get", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, s3Error(err, "failed to read object", "defaults.S3Store.Get", key)
	}
	return data, nil
}

// Set implements Store
func (s *S3Store) Set(ctx context.Context, key string, data []byte) error {
	if err := validateKey("defaults.S3Store.Set", key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return s3Error(err, "failed to put object", "defaults.S3Store.Set", key)
	}
	return nil
}

// Delete implements Store
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil && !isNotFound(err) {
		return s3Error(err, "failed to delete object", "defaults.S3Store.Delete", key)
	}
	return nil
}

// Close implements Store
func (s *S3Store) Close() error {
	return nil
}

// isNotFound recognizes the typed NoSuchKey error and the bare NotFound code
// S3-compatible servers return for HEAD style failures
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || strings.EqualFold(code, "NotFound")
	}
	return false
}

func s3Error(err error, message, op, key string) *gperror.Error {
	return gperror.Wrap(err, message).
		WithCode(gperror.CodeNetworkError).
		WithOperation(op).
		WithDetail("key", key)
}
