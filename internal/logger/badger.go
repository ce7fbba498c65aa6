package logger

import "strings"

// BadgerLogger adapts *Logger to the badger.Logger interface so the embedded
// device cache reports through the application's structured log instead of
// the standard library logger.
type BadgerLogger struct {
	l *Logger
}

// NewBadgerLogger returns an adapter tagging every entry with
// component=badger. Badger's Info and Debug chatter is demoted to Debug.
func NewBadgerLogger(l *Logger) *BadgerLogger {
	return &BadgerLogger{l: &Logger{l.With().Str("component", "badger").Logger()}}
}

func (b *BadgerLogger) Errorf(format string, args ...any) {
	b.l.Error().Msgf(trim(format), args...)
}

func (b *BadgerLogger) Warningf(format string, args ...any) {
	b.l.Warn().Msgf(trim(format), args...)
}

func (b *BadgerLogger) Infof(format string, args ...any) {
	b.l.Debug().Msgf(trim(format), args...)
}

func (b *BadgerLogger) Debugf(format string, args ...any) {
	b.l.Debug().Msgf(trim(format), args...)
}

// badger terminates most formats with a newline
func trim(format string) string {
	return strings.TrimRight(format, "\n")
}
