// Package testhelpers provides shared helpers for package tests.
package testhelpers

import "github.com/jonesrussell/gopress/internal/logger"

// NewTestLogger returns a logger that discards output.
func NewTestLogger() logger.Logger {
	return logger.NewNop()
}
