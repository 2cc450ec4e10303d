package cli

// Command failures are reported as errx errors. Each sentinel below is
// bound to an errx category when it is declared, so wrapping a cause
// with a sentinel also stamps the category code on the result.

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"

	"errstore/pkg/errx"
)

var debugMode atomic.Bool

// SetDebugMode toggles structured error logging and verbose error output.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

// IsDebugMode reports whether --debug is in effect.
func IsDebugMode() bool {
	return debugMode.Load()
}

// sentinelCategory maps each sentinel to its errx category code. It is
// filled by newSentinelError during package initialization.
var sentinelCategory = make(map[error]string)

// newSentinelError declares a sentinel in category. The category must be
// one errx knows about.
func newSentinelError(msg, category string) error {
	if !errx.IsValidCode(category) {
		panic(fmt.Sprintf("cli: sentinel %q uses unknown errx category %s", msg, category))
	}
	err := errors.New(msg)
	sentinelCategory[err] = category
	return err
}

var (
	ErrCatalogRequired    = newSentinelError("at least one catalog is required", errx.CodeCLI)
	ErrInvalidCode        = newSentinelError("invalid error code", errx.CodeCLI)
	ErrEncodeOutputFailed = newSentinelError("failed to encode output", errx.CodeCLI)

	ErrResolveConfigFailed = newSentinelError("failed to resolve config", errx.CodeConfig)

	ErrBuildStoreFailed = newSentinelError("failed to build error store", errx.CodeStore)
	ErrDuplicatesFound  = newSentinelError("duplicate error definitions found", errx.CodeStore)
)

// categoryOf resolves the category of a sentinel, defaulting to CLI.
func categoryOf(sentinel error) (code, description string) {
	code, ok := sentinelCategory[sentinel]
	if !ok {
		code = errx.CodeCLI
	}
	description, _ = errx.DescriptionFor(code)
	return code, description
}

// newWithSentinel builds an error in the sentinel's category.
func newWithSentinel(base error, msg string) error {
	return wrapWithSentinel(base, nil, msg)
}

// wrapWithSentinel wraps cause under base. A nil base yields a plain CLI
// error.
func wrapWithSentinel(base, cause error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, cause)
	}
	return errx.FromSentinel(base, categoryOf, msg, cause)
}

func wrapWithSentinelAndContext(base, cause error, msg string, context map[string]any) error {
	err := wrapWithSentinel(base, cause, msg)
	var xerr *errx.Error
	if len(context) > 0 && errors.As(err, &xerr) {
		return xerr.WithContextMap(context)
	}
	return err
}

// logStructuredError emits err at error level with the errx fields as
// sorted zap fields. It is silent outside debug mode.
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	fields := errx.Fields(err)
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys)+1)
	for _, key := range keys {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}
	logger.Error(msg, append(zapFields, zap.Error(err))...)
}

// FormatError renders err for the terminal: the errx user string, or the
// full chain with codes and context in debug mode.
func FormatError(err error) string {
	if IsDebugMode() {
		return errx.DebugString(err)
	}
	return errx.UserString(err)
}
