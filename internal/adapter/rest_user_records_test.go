// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
)

// fakePostgREST emulates the subset of PostgREST used by the adapter on a
// single "user_encryption" table.
type fakePostgREST struct {
	t      *testing.T
	apiKey string
	token  string

	mu   sync.Mutex
	rows map[string]map[string]any
}

func newFakePostgREST(t *testing.T) (*fakePostgREST, *httptest.Server) {
	f := &fakePostgREST{t: t, apiKey: "anon", token: "user-jwt", rows: map[string]map[string]any{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/rest/v1/user_encryption", r.URL.Path)
	if r.Header.Get("apikey") != f.apiKey || r.Header.Get("Authorization") != "Bearer "+f.token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"JWT expired"}`))
		return
	}

	userID := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		out := []map[string]any{}
		if row, ok := f.rows[userID]; ok {
			sel := map[string]any{}
			for _, col := range strings.Split(r.URL.Query().Get("select"), ",") {
				sel[col] = row[col]
			}
			out = append(out, sel)
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		assert.Equal(f.t, preferIgnoreDuplicates, r.Header.Get("Prefer"))
		var in []map[string]any
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&in))
		for _, row := range in {
			id := row["user_id"].(string)
			if _, exists := f.rows[id]; !exists {
				f.rows[id] = row
			}
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodPatch:
		assert.Equal(f.t, preferRepresentation, r.Header.Get("Prefer"))
		var in map[string]any
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&in))
		row, ok := f.rows[userID]
		if !ok {
			writeJSON(w, http.StatusOK, []any{})
			return
		}
		for k, v := range in {
			row[k] = v
		}
		writeJSON(w, http.StatusOK, []any{row})

	case http.MethodDelete:
		delete(f.rows, userID)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestAdapter(t *testing.T, serverURL string) UserRecordsAdapter {
	t.Helper()
	a, err := NewRESTUserRecords(config.Adapter{
		BaseURL:        serverURL + "/rest/v1/",
		APIKey:         "anon",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	a.SetToken(" user-jwt ")
	return a
}

func TestNewRESTUserRecords_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host", "http://"} {
		_, err := NewRESTUserRecords(config.Adapter{BaseURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidBaseURL, raw)
	}
}

func TestRESTUserRecords_Token(t *testing.T) {
	_, srv := newFakePostgREST(t)
	a := newTestAdapter(t, srv.URL)
	assert.Equal(t, "user-jwt", a.Token())
}

func TestRESTUserRecords_Lifecycle(t *testing.T) {
	_, srv := newFakePostgREST(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	salt, err := a.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, salt)

	state, err := a.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, state.Configured)

	stored, err := a.CreateEncryptionSalt(ctx, "u1", "salt-a")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", stored)

	// the first writer wins
	stored, err = a.CreateEncryptionSalt(ctx, "u1", "salt-b")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", stored)

	require.NoError(t, a.SavePinHash(ctx, "u1", "hash-1"))
	state, err = a.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", state.Hash)
	assert.True(t, state.Configured)

	require.NoError(t, a.ClearPinHash(ctx, "u1"))
	state, err = a.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, state.Hash)
	assert.False(t, state.Configured)

	salt, err = a.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", salt)

	require.NoError(t, a.DeleteEncryptionState(ctx, "u1"))
	salt, err = a.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, salt)
}

func TestRESTUserRecords_SavePinHashWithoutRecord(t *testing.T) {
	_, srv := newFakePostgREST(t)
	a := newTestAdapter(t, srv.URL)

	err := a.SavePinHash(context.Background(), "ghost", "hash")
	assert.ErrorIs(t, err, store.ErrUserRecordNotFound)
}

func TestRESTUserRecords_Unauthorized(t *testing.T) {
	_, srv := newFakePostgREST(t)
	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	_, err := a.GetEncryptionSalt(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "JWT expired")
}

func TestRESTUserRecords_SaltNotPersisted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateEncryptionSalt(context.Background(), "u1", "salt")
	assert.ErrorIs(t, err, store.ErrSaltNotPersisted)
}

func TestRESTUserRecords_PinFlagWithoutHash(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]any
	}{
		{name: "empty hash", row: map[string]any{"pin_hash": "", "pin_configured": true}},
		{name: "null hash", row: map[string]any{"pin_hash": nil, "pin_configured": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []any{tt.row})
			}))
			defer srv.Close()

			state, err := newTestAdapter(t, srv.URL).GetPinState(context.Background(), "u1")
			require.NoError(t, err)
			assert.False(t, state.Configured)
			assert.Empty(t, state.Hash)
		})
	}
}

func TestRESTUserRecords_ErrorMapping(t *testing.T) {
	tests := []struct {
		status    int
		want      error
		transient bool
	}{
		{http.StatusBadRequest, ErrBadRequest, false},
		{http.StatusForbidden, ErrForbidden, false},
		{http.StatusNotFound, ErrNotFound, false},
		{http.StatusConflict, ErrConflict, false},
		{http.StatusTooManyRequests, ErrRateLimited, true},
		{http.StatusBadGateway, ErrBadGateway, true},
		{http.StatusServiceUnavailable, ErrBadGateway, true},
		{http.StatusInternalServerError, ErrInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetPinState(context.Background(), "u1")
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.transient, errors.Is(err, store.ErrTransient))
		})
	}
}

func TestRESTUserRecords_PostgRESTErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		text   string
	}{
		{"expired jwt on 403", http.StatusForbidden, `{"code":"PGRST301","message":"JWT expired"}`, ErrUnauthorized, "JWT expired"},
		{"no single row", http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested","details":"0 rows"}`, ErrNotFound, "(0 rows)"},
		{"unique violation", http.StatusBadRequest, `{"code":"23505","message":"duplicate key"}`, ErrConflict, "duplicate key"},
		{"plain text body", http.StatusBadRequest, "  broken filter  ", ErrBadRequest, "broken filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetPinState(context.Background(), "u1")
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.text)
		})
	}
}

func TestRESTUserRecords_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetEncryptionSalt(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrDecodeResponse)
}
