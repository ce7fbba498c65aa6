package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPinTooShort    = errors.New("PIN is too short")
	ErrPinTooLong     = errors.New("PIN is too long")
	ErrPinNotNumeric  = errors.New("PIN must contain digits only")
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidEmail   = errors.New("invalid contact email")
	ErrInvalidURL     = errors.New("invalid calendar URL")
	ErrBirthInFuture  = errors.New("birth date lies in the future")
	ErrInvalidPhone   = errors.New("invalid contact phone")
	ErrInvalidLocale  = errors.New("invalid locale")
	ErrEmptyFullName  = errors.New("full name is required")
	ErrEmptySchool    = errors.New("school is required")
	ErrEncryptedInput = errors.New("profile is still encrypted")
)
