// Package defaults persists small typed values under string keys.
//
// Package: defaults
// Title: Typed Defaults Store
// Description: A key/value Store abstraction with memory, SQLite, Postgres and
//              S3 backends, plus GetObject/SetObject helpers that keep values
//              as JSON. It plays the role of a user preferences database for
//              command line tools and services.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Store interface, memory and SQLite backends
// - 2026-10-08 v0.1.1: Postgres and S3 backends, Open from settings
// - 2026-10-09 v0.1.2: Typed helpers log decode failures
//
// Backends:
//
//	memory    process local map, the default
//	sqlite    github.com/mattn/go-sqlite3 in WAL mode, table kv
//	postgres  github.com/jackc/pgx/v5 through database/sql, table gopress_defaults
//	s3        github.com/aws/aws-sdk-go-v2/service/s3, one object per key
//
// Open selects the backend from config.Settings:
//
//	store, err := defaults.Open(ctx, settings)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = defaults.SetObject(ctx, store, "profile", Profile{Name: "Ada"})
//	profile, ok := defaults.GetObject[Profile](ctx, store, "profile")
//
// Missing keys:
//
// Store.Get returns ErrNotFound for a missing key. GetObject turns both a
// missing key and an undecodable value into an absent result.
package defaults
