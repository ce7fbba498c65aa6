// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validProfile() models.Profile {
	birth := time.Date(2015, 3, 14, 0, 0, 0, 0, time.UTC)
	return models.Profile{
		UserID:    "u1",
		School:    "Grundschule am Park",
		ClassName: "3b",
		Locale:    "de-DE",
		Sensitive: models.SensitiveProfile{
			FullName:     "Alice Example",
			BirthDate:    &birth,
			CalendarURL:  "webcal://calendar.example.org/alice.ics",
			ContactName:  "Frau Lehrerin",
			ContactEmail: "office@school.example",
			ContactPhone: "+49 30 1234567",
		},
	}
}

func newTestProfileValidator() *ProfileValidator {
	return &ProfileValidator{now: func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }}
}

// ---------------------------------------------------------------------------
// TestProfileValidator
// ---------------------------------------------------------------------------

func TestNewProfileValidator(t *testing.T) {
	v := NewProfileValidator()
	require.NotNil(t, v)
}

func TestProfileValidator_Dispatch(t *testing.T) {
	v := newTestProfileValidator()
	ctx := context.Background()
	p := validProfile()

	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.ErrorIs(t, v.Validate(ctx, "profile"), ErrUnsupportedType)
}

func TestProfileValidator_Fields(t *testing.T) {
	v := newTestProfileValidator()
	ctx := context.Background()
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(p *models.Profile)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.Profile) {}},
		{name: "only required set", mutate: func(p *models.Profile) {
			p.Locale = ""
			p.Sensitive = models.SensitiveProfile{FullName: "Alice"}
		}},
		{name: "no user", mutate: func(p *models.Profile) { p.UserID = " " }, wantErr: ErrInvalidUserID},
		{name: "no school", mutate: func(p *models.Profile) { p.School = "" }, wantErr: ErrEmptySchool},
		{name: "no name", mutate: func(p *models.Profile) { p.Sensitive.FullName = "" }, wantErr: ErrEmptyFullName},
		{name: "bad locale", mutate: func(p *models.Profile) { p.Locale = "d" }, wantErr: ErrInvalidLocale},
		{name: "future birth", mutate: func(p *models.Profile) { p.Sensitive.BirthDate = &future }, wantErr: ErrBirthInFuture},
		{name: "calendar scheme", mutate: func(p *models.Profile) { p.Sensitive.CalendarURL = "ftp://x/y.ics" }, wantErr: ErrInvalidURL},
		{name: "calendar relative", mutate: func(p *models.Profile) { p.Sensitive.CalendarURL = "/y.ics" }, wantErr: ErrInvalidURL},
		{name: "email", mutate: func(p *models.Profile) { p.Sensitive.ContactEmail = "office" }, wantErr: ErrInvalidEmail},
		{name: "phone letters", mutate: func(p *models.Profile) { p.Sensitive.ContactPhone = "call me" }, wantErr: ErrInvalidPhone},
		{name: "phone short", mutate: func(p *models.Profile) { p.Sensitive.ContactPhone = "123" }, wantErr: ErrInvalidPhone},
		{name: "scoped skips others", mutate: func(p *models.Profile) { p.School = "" }, fields: []string{FieldUserID}},
		{name: "unknown field", mutate: func(p *models.Profile) {}, fields: []string{"nickname"}, wantErr: ErrUnknownField},
		{name: "still encrypted", mutate: func(p *models.Profile) {
			p.IsEncrypted = true
			p.EncryptedData = "ct"
		}, wantErr: ErrEncryptedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := v.Validate(ctx, p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
