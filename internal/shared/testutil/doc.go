// Package testutil holds helpers shared by the package tests: a recording
// slog handler and measurement CSV fixtures.
package testutil
