// File: store.go
// Title: Defaults Store Interface
// Description: Store contract, typed JSON helpers and backend selection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-08 v0.1.1: Open from settings
// - 2026-10-09 v0.1.2: Typed helpers log decode failures

package defaults

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/msto63/gopress/codec/jsonx"
	"github.com/msto63/gopress/core/config"
	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
)

// ErrNotFound is returned by Store.Get for a missing key
var ErrNotFound = errors.New("defaults: key not found")

// Store persists raw values under string keys
type Store interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key, replacing any previous value
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	Close() error
}

// GetObject reads key and decodes it as JSON into T. A missing key, a
// backend failure and an undecodable value are all absent.
func GetObject[T any](ctx context.Context, s Store, key string) (T, bool) {
	var zero T
	logger := log.GetDefault().WithName("defaults")

	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Debug("key not found", log.Field("key", key))
		} else {
			logger.LogError(err)
		}
		return zero, false
	}
	return jsonx.Decode[T](data)
}

// SetObject encodes v as JSON and stores it under key
func SetObject(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return gperror.Wrap(err, "failed to encode value").
			WithCode(gperror.CodeEncodingError).
			WithOperation("defaults.SetObject").
			WithDetail("key", key)
	}
	return s.Set(ctx, key, data)
}

// Open creates the backend named by settings.DefaultsDriver
func Open(ctx context.Context, settings config.Settings) (Store, error) {
	var (
		store Store
		err   error
	)
	switch settings.DefaultsDriver {
	case "", config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		store, err = NewSQLiteStore(SQLiteConfig{Path: settings.DefaultsDSN})
	case config.DriverPostgres:
		store, err = NewPostgresStore(ctx, settings.DefaultsDSN)
	case config.DriverS3:
		store, err = NewS3StoreFromConfig(ctx, S3Config{
			Bucket: settings.DefaultsBucket,
			Prefix: settings.DefaultsPrefix,
		})
	default:
		return nil, gperror.New(fmt.Sprintf("unknown defaults driver %q", settings.DefaultsDriver)).
			WithCode(gperror.CodeConfigError).
			WithOperation("defaults.Open")
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

func validateKey(op, key string) error {
	if key == "" {
		return gperror.New("key cannot be empty").
			WithCode(gperror.CodeInvalidInput).
			WithOperation(op)
	}
	return nil
}
