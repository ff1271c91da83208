// Package sentry reports crashes and unexpected tool failures to Sentry. All
// functions are no-ops until Init succeeds with a DSN.
package sentry

import (
	"bytes"
	"fmt"
	"io"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/logrusorgru/aurora"

	"github.com/skyport-cloud/skyport-mcp/internal/buildinfo"
)

var initialized atomic.Bool

// Init configures the Sentry client. An empty dsn leaves reporting disabled.
func Init(dsn string) error {
	if dsn == "" {
		return nil
	}

	opts := sentry.ClientOptions{
		Dsn:         dsn,
		Environment: buildinfo.Environment(),
		Release:     buildinfo.Version().String(),
		Transport: &sentry.HTTPSyncTransport{
			Timeout: 3 * time.Second,
		},
	}

	if err := sentry.Init(opts); err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	initialized.Store(true)

	return nil
}

type CaptureOption func(scope *sentry.Scope)

func WithContext(key string, val map[string]interface{}) CaptureOption {
	return func(scope *sentry.Scope) {
		scope.SetContext(key, val)
	}
}

func WithTag(key, value string) CaptureOption {
	return func(scope *sentry.Scope) {
		scope.SetTag(key, value)
	}
}

func CaptureException(err error, opts ...CaptureOption) {
	if !initialized.Load() {
		return
	}

	sentry.WithScope(func(s *sentry.Scope) {
		for _, opt := range opts {
			opt(s)
		}

		_ = sentry.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be sent.
func Flush(timeout time.Duration) {
	if initialized.Load() {
		sentry.Flush(timeout)
	}
}

// Recover records the given panic to sentry and prints it to w.
func Recover(v interface{}, w io.Writer) {
	if initialized.Load() {
		_ = sentry.CurrentHub().Recover(v)
	}

	printError(v, w)
}

func printError(v interface{}, w io.Writer) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, aurora.Red("Oops, something went wrong! Could you try that again?"))

	if buildinfo.IsDev() {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, v)
		fmt.Fprintln(&buf, string(debug.Stack()))
	}

	buf.WriteTo(w)
}
