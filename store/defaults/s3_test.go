// File: s3_test.go
// Title: S3 Backend Tests
// Description: Runs the store contract against an in-memory S3API fake and
//              checks error mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial tests

package defaults

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	gperror "github.com/msto63/gopress/core/error"
)

// fakeS3 keeps objects in memory keyed by bucket/key
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	failGet error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	f.mu.Unlock()
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	f.mu.Unlock()
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	fake := newFakeS3()
	s := NewS3Store(fake, "prefs", "defaults/")
	testStoreContract(t, s)

	t.Run("keys are prefixed", func(t *testing.T) {
		_ = s.Set(context.Background(), "theme", []byte(`"dark"`))
		if _, ok := fake.objects["prefs/defaults/theme"]; !ok {
			t.Errorf("object not stored under prefix, have %v", fake.objects)
		}
	})
}

func TestS3ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{"typed NoSuchKey", &types.NoSuchKey{}, true},
		{"generic NotFound", &smithy.GenericAPIError{Code: "NotFound"}, true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"transport", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeS3()
			fake.failGet = tt.err
			_, err := NewS3Store(fake, "b", "").Get(context.Background(), "k")

			if got := errors.Is(err, ErrNotFound); got != tt.wantNotFound {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v (err = %v)", got, tt.wantNotFound, err)
			}
			if !tt.wantNotFound && !gperror.HasCode(err, gperror.CodeNetworkError) {
				t.Errorf("error code = %v, want NETWORK_ERROR", gperror.GetCode(err))
			}
		})
	}
}

func TestNewS3StoreFromConfigRequiresBucket(t *testing.T) {
	_, err := NewS3StoreFromConfig(context.Background(), S3Config{})
	if !gperror.HasCode(err, gperror.CodeConfigError) {
		t.Errorf("NewS3StoreFromConfig() error = %v", err)
	}
}
