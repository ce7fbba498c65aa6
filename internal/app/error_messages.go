// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app turns errors of the encryption core into short, non-technical
// messages shown to the user.
//
// Messages exist in English and German; [UserMessage] picks the catalog by
// locale tag and falls back to English. Keys, PINs and store details never
// appear in a message.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/service"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/validators"
)

const (
	// MsgInvalidPin is shown when the PIN does not have the expected format.
	MsgInvalidPin = "invalid PIN"

	// MsgWrongPin is shown for a rejected PIN; it is formatted with the
	// number of attempts left.
	MsgWrongPin = "wrong PIN"

	// MsgLockedOut is shown while unlocking is blocked; it is formatted with
	// the time the lockout ends.
	MsgLockedOut = "locked out"

	// MsgSetupRolledBack is shown when a PIN setup could not be completed
	// and was undone.
	MsgSetupRolledBack = "setup rolled back"

	// MsgBusy is shown for a second submission while one is in flight.
	MsgBusy = "busy"

	// MsgPinNotConfigured is shown when unlocking an account without a PIN.
	MsgPinNotConfigured = "PIN not configured"

	// MsgPinAlreadyConfigured is shown when setting up a PIN twice.
	MsgPinAlreadyConfigured = "PIN already configured"

	// MsgKeyNotResident is shown when encrypted data is requested while the
	// account is locked.
	MsgKeyNotResident = "key not resident"

	// MsgUndecryptable is shown when stored data cannot be decrypted.
	MsgUndecryptable = "undecryptable"

	// MsgTryAgain is shown when storage failed for a passing reason.
	MsgTryAgain = "try again"

	// MsgNoUser is shown when no signed-in identity is available.
	MsgNoUser = "no user"

	// MsgInternalError is shown for every other failure.
	MsgInternalError = "internal error"
)

var catalogs = map[string]map[string]string{
	"en": {
		MsgInvalidPin:           "The PIN must consist of 4 to 8 digits.",
		MsgWrongPin:             "The PIN is not correct. %d attempts left.",
		MsgLockedOut:            "Too many wrong attempts. Please try again after %s.",
		MsgSetupRolledBack:      "The PIN could not be saved. Nothing was changed, please set up your PIN again.",
		MsgBusy:                 "Please wait, your PIN is being checked.",
		MsgPinNotConfigured:     "No PIN has been set up for this account yet.",
		MsgPinAlreadyConfigured: "A PIN has already been set up for this account.",
		MsgKeyNotResident:       "Please unlock with your PIN first.",
		MsgUndecryptable:        "Your saved data could not be unlocked.",
		MsgTryAgain:             "Your data could not be reached right now. Please try again in a moment.",
		MsgNoUser:               "Please sign in first.",
		MsgInternalError:        "Something went wrong. Please try again.",
	},
	"de": {
		MsgInvalidPin:           "Die PIN muss aus 4 bis 8 Ziffern bestehen.",
		MsgWrongPin:             "Die PIN ist nicht korrekt. Noch %d Versuche.",
		MsgLockedOut:            "Zu viele Fehlversuche. Bitte versuche es nach %s erneut.",
		MsgSetupRolledBack:      "Die PIN konnte nicht gespeichert werden. Es wurde nichts geändert, bitte richte deine PIN erneut ein.",
		MsgBusy:                 "Bitte warten, deine PIN wird geprüft.",
		MsgPinNotConfigured:     "Für dieses Konto wurde noch keine PIN eingerichtet.",
		MsgPinAlreadyConfigured: "Für dieses Konto ist bereits eine PIN eingerichtet.",
		MsgKeyNotResident:       "Bitte entsperre zuerst mit deiner PIN.",
		MsgUndecryptable:        "Deine gespeicherten Daten konnten nicht entschlüsselt werden.",
		MsgTryAgain:             "Deine Daten sind gerade nicht erreichbar. Bitte versuche es gleich noch einmal.",
		MsgNoUser:               "Bitte melde dich zuerst an.",
		MsgInternalError:        "Etwas ist schiefgelaufen. Bitte versuche es erneut.",
	},
}

// UserMessage returns the message for err in the language of locale. A nil
// err yields "". The lockout end is rendered in loc, UTC when loc is nil.
func UserMessage(err error, locale string, loc *time.Location) string {
	if err == nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}

	catalog := catalogFor(locale)

	var locked *service.LockoutError
	if errors.As(err, &locked) {
		return fmt.Sprintf(catalog[MsgLockedOut], locked.Until.In(loc).Format("15:04"))
	}

	var wrong *service.WrongPinError
	if errors.As(err, &wrong) {
		return fmt.Sprintf(catalog[MsgWrongPin], wrong.Remaining)
	}

	return catalog[messageKey(err)]
}

func messageKey(err error) string {
	switch {
	case errors.Is(err, service.ErrSetupRolledBack):
		return MsgSetupRolledBack
	case errors.Is(err, service.ErrBusy):
		return MsgBusy
	case errors.Is(err, validators.ErrPinTooShort),
		errors.Is(err, validators.ErrPinTooLong),
		errors.Is(err, validators.ErrPinNotNumeric):
		return MsgInvalidPin
	case errors.Is(err, service.ErrPinNotConfigured):
		return MsgPinNotConfigured
	case errors.Is(err, service.ErrPinAlreadyConfigured):
		return MsgPinAlreadyConfigured
	case errors.Is(err, service.ErrKeyNotResident):
		return MsgKeyNotResident
	case errors.Is(err, service.ErrProfileUndecryptable):
		return MsgUndecryptable
	case errors.Is(err, service.ErrNoUserID):
		return MsgNoUser
	case errors.Is(err, store.ErrTransient):
		return MsgTryAgain
	default:
		return MsgInternalError
	}
}

// catalogFor matches the primary subtag of locale, "de-AT" selects German.
func catalogFor(locale string) map[string]string {
	lang, _, _ := strings.Cut(strings.ToLower(locale), "-")
	lang, _, _ = strings.Cut(lang, "_")
	if catalog, ok := catalogs[lang]; ok {
		return catalog
	}
	return catalogs["en"]
}
