package validators

import (
	"context"
	"fmt"
)

const (
	// MinPinLength is the shortest PIN accepted at setup.
	MinPinLength = 4
	// MaxPinLength is the longest PIN accepted at setup.
	MaxPinLength = 8
)

// PinValidator checks that a PIN is a string of MinPinLength to MaxPinLength
// ASCII digits. Field scoping is not supported.
type PinValidator struct {
}

func NewPinValidator() Validator {
	return &PinValidator{}
}

func (v *PinValidator) Validate(_ context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	pin, ok := obj.(string)
	if !ok {
		return ErrUnsupportedType
	}

	switch {
	case len(pin) < MinPinLength:
		return fmt.Errorf("%w: at least %d digits", ErrPinTooShort, MinPinLength)
	case len(pin) > MaxPinLength:
		return fmt.Errorf("%w: at most %d digits", ErrPinTooLong, MaxPinLength)
	}

	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrPinNotNumeric
		}
	}

	return nil
}
