package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/utils"
	"github.com/MKhiriev/go-absence-keeper/models"
)

const (
	userRecordsPath = "/user_encryption"

	preferIgnoreDuplicates = "resolution=ignore-duplicates,return=minimal"
	preferRepresentation   = "return=representation"
)

// userRecordRow is the JSON shape of a "user_encryption" row.
type userRecordRow struct {
	UserID         string     `json:"user_id,omitempty"`
	EncryptionSalt *string    `json:"encryption_salt,omitempty"`
	PinHash        *string    `json:"pin_hash"`
	PinConfigured  *bool      `json:"pin_configured,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type restUserRecords struct {
	client *utils.HTTPClient
	apiKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
	now    func() time.Time
}

// NewRESTUserRecords constructs a REST implementation of
// [UserRecordsAdapter]. It validates cfg.BaseURL and configures the
// underlying HTTP client with the base URL and request timeout.
//
// Returns [ErrInvalidBaseURL] if cfg.BaseURL is empty or not an absolute
// http(s) URL.
func NewRESTUserRecords(cfg config.Adapter, logger *logger.Logger) (UserRecordsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating REST user records adapter")

	return &restUserRecords{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [UserRecordsAdapter].
func (r *restUserRecords) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = strings.TrimSpace(token)
}

// Token implements [UserRecordsAdapter].
func (r *restUserRecords) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

// GetEncryptionSalt implements [store.UserRecordRepository].
func (r *restUserRecords) GetEncryptionSalt(ctx context.Context, userID string) (string, error) {
	rows, err := r.selectRows(ctx, userID, "encryption_salt")
	if err != nil {
		return "", fmt.Errorf("get encryption salt: %w", err)
	}
	if len(rows) == 0 || rows[0].EncryptionSalt == nil {
		return "", nil
	}

	return *rows[0].EncryptionSalt, nil
}

// CreateEncryptionSalt implements [store.UserRecordRepository]. The insert
// is sent with "resolution=ignore-duplicates" so that a concurrent writer's
// salt is kept; the stored value is then read back.
func (r *restUserRecords) CreateEncryptionSalt(ctx context.Context, userID, salt string) (string, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	body := userRecordRow{
		UserID:         userID,
		EncryptionSalt: &salt,
		PinConfigured:  new(bool),
		UpdatedAt:      &now,
	}

	resp, err := r.request(ctx).
		SetHeader("Prefer", preferIgnoreDuplicates).
		SetBody([]userRecordRow{body}).
		Post(userRecordsPath)
	if err != nil {
		log.Err(err).Str("func", "restUserRecords.CreateEncryptionSalt").Str("user_id", userID).Msg("request failed")
		return "", fmt.Errorf("create encryption salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "restUserRecords.CreateEncryptionSalt").Str("user_id", userID).Msg("backend rejected salt")
		return "", err
	}

	stored, err := r.GetEncryptionSalt(ctx, userID)
	if err != nil {
		return "", err
	}
	if stored == "" {
		return "", store.ErrSaltNotPersisted
	}

	return stored, nil
}

// GetPinState implements [store.UserRecordRepository].
func (r *restUserRecords) GetPinState(ctx context.Context, userID string) (models.PinState, error) {
	rows, err := r.selectRows(ctx, userID, "pin_hash,pin_configured")
	if err != nil {
		return models.PinState{}, fmt.Errorf("get pin state: %w", err)
	}
	if len(rows) == 0 {
		return models.PinState{}, nil
	}

	var state models.PinState
	if rows[0].PinHash != nil {
		state.Hash = *rows[0].PinHash
	}
	if rows[0].PinConfigured != nil {
		state.Configured = *rows[0].PinConfigured && state.Hash != ""
	}

	return state, nil
}

// SavePinHash implements [store.UserRecordRepository]. It returns
// [store.ErrUserRecordNotFound] when the user has no record yet.
func (r *restUserRecords) SavePinHash(ctx context.Context, userID, hash string) error {
	configured := true
	rows, err := r.patch(ctx, userID, userRecordRow{PinHash: &hash, PinConfigured: &configured})
	if err != nil {
		return fmt.Errorf("save pin hash: %w", err)
	}
	if len(rows) == 0 {
		return store.ErrUserRecordNotFound
	}

	return nil
}

// ClearPinHash implements [store.UserRecordRepository].
func (r *restUserRecords) ClearPinHash(ctx context.Context, userID string) error {
	if _, err := r.patch(ctx, userID, userRecordRow{PinConfigured: new(bool)}); err != nil {
		return fmt.Errorf("clear pin hash: %w", err)
	}

	return nil
}

// DeleteEncryptionState implements [store.UserRecordRepository].
func (r *restUserRecords) DeleteEncryptionState(ctx context.Context, userID string) error {
	resp, err := r.request(ctx).
		SetQueryParam("user_id", "eq."+userID).
		Delete(userRecordsPath)
	if err != nil {
		return fmt.Errorf("delete encryption state request: %w", err)
	}

	return mapHTTPError(resp)
}

func (r *restUserRecords) selectRows(ctx context.Context, userID, columns string) ([]userRecordRow, error) {
	resp, err := r.request(ctx).
		SetQueryParam("user_id", "eq."+userID).
		SetQueryParam("select", columns).
		Get(userRecordsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "restUserRecords.selectRows").Str("user_id", userID).Msg("request failed")
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp)
}

// patch updates the row of userID. PinHash is always sent, a nil value
// clears the column.
func (r *restUserRecords) patch(ctx context.Context, userID string, row userRecordRow) ([]userRecordRow, error) {
	now := r.now()
	row.UpdatedAt = &now

	resp, err := r.request(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParam("user_id", "eq."+userID).
		SetBody(row).
		Patch(userRecordsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "restUserRecords.patch").Str("user_id", userID).Msg("request failed")
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp)
}

func (r *restUserRecords) request(ctx context.Context) *resty.Request {
	req := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if r.apiKey != "" {
		req.SetHeader("apikey", r.apiKey)
	}
	if token := r.Token(); token != "" {
		req.SetAuthToken(token)
	}

	return req
}

func decodeRows(resp *resty.Response) ([]userRecordRow, error) {
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var rows []userRecordRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return rows, nil
}
