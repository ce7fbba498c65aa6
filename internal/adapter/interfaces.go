// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer implementations of the store
// interfaces that live behind a remote backend-as-a-service.
//
// The package currently ships a REST implementation of
// [store.UserRecordRepository] ([NewRESTUserRecords]) speaking the
// PostgREST dialect: filters in the query string, "Prefer" headers for
// conflict handling and JSON arrays as responses.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import "github.com/MKhiriev/go-absence-keeper/internal/store"

// UserRecordsAdapter is a [store.UserRecordRepository] reached over the
// network. Requests are made on behalf of the signed-in user, whose access
// token is attached as a bearer token so that the backend's row-level
// policies apply.
type UserRecordsAdapter interface {
	store.UserRecordRepository

	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. An empty token makes requests anonymous.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string
}
