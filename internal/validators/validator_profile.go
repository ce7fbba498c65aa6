package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-absence-keeper/models"
)

// Field name constants used to specify which profile fields should be
// validated.
const (
	// FieldUserID targets the owner identifier of the profile.
	FieldUserID = "user_id"

	// FieldSchool targets the school the absence form is addressed to.
	FieldSchool = "school"

	// FieldLocale targets the BCP 47-ish locale tag of the generated forms.
	FieldLocale = "locale"

	// FieldFullName targets the student's full name.
	FieldFullName = "full_name"

	// FieldBirthDate targets the student's birth date; it must not lie in the future.
	FieldBirthDate = "birth_date"

	// FieldCalendarURL targets the subscribed calendar URL.
	FieldCalendarURL = "calendar_url"

	// FieldContactEmail targets the e-mail address of the counterparty contact.
	FieldContactEmail = "contact_email"

	// FieldContactPhone targets the phone number of the counterparty contact.
	FieldContactPhone = "contact_phone"
)

// ProfileValidator validates absence-form profiles in their plaintext form.
// Optional fields are only checked when set; FieldUserID, FieldSchool and
// FieldFullName are required.
type ProfileValidator struct {
	now func() time.Time
}

func NewProfileValidator() Validator {
	return &ProfileValidator{now: time.Now}
}

func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfile(_ context.Context, p models.Profile, fields ...string) error {
	if p.StillEncrypted() {
		return ErrEncryptedInput
	}

	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSchool, FieldLocale, FieldFullName, FieldBirthDate,
			FieldCalendarURL, FieldContactEmail, FieldContactPhone}
	}

	s := p.Sensitive
	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(p.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldSchool:
			if strings.TrimSpace(p.School) == "" {
				return ErrEmptySchool
			}
		case FieldLocale:
			if p.Locale != "" && !isLocale(p.Locale) {
				return ErrInvalidLocale
			}
		case FieldFullName:
			if strings.TrimSpace(s.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldBirthDate:
			if s.BirthDate != nil && s.BirthDate.After(v.now()) {
				return ErrBirthInFuture
			}
		case FieldCalendarURL:
			if s.CalendarURL != "" && !isCalendarURL(s.CalendarURL) {
				return ErrInvalidURL
			}
		case FieldContactEmail:
			if s.ContactEmail != "" {
				if _, err := mail.ParseAddress(s.ContactEmail); err != nil {
					return ErrInvalidEmail
				}
			}
		case FieldContactPhone:
			if s.ContactPhone != "" && !isPhone(s.ContactPhone) {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isCalendarURL accepts absolute http(s) and webcal URLs.
func isCalendarURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "webcal":
		return true
	}
	return false
}

func isPhone(raw string) bool {
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '/':
		default:
			return false
		}
	}
	return digits >= 5 && digits <= 15
}

func isLocale(raw string) bool {
	parts := strings.Split(raw, "-")
	if len(parts[0]) < 2 || len(parts[0]) > 3 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 8 {
			return false
		}
		for _, r := range part {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return true
}
