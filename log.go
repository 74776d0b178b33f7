package zeromt

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger replaces the logger used by the provers and verifiers. It must be
// called before any proof session starts.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the package logger. Verifiers log every rejection at debug
// level with the protocol name and the failing check.
func Logger() *zerolog.Logger {
	return &logger
}
