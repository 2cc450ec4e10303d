package errstore

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap"
)

// Logger receives resolved descriptors each time they are looked up.
// Implementations handle their own failures.
type Logger interface {
	LogDescriptor(d *Descriptor)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(d *Descriptor)

// LogDescriptor calls f(d).
func (f LoggerFunc) LogDescriptor(d *Descriptor) {
	f(d)
}

const logMessage = "error surfaced"

// ZapLogger logs descriptors as structured zap fields:
//   - error.code: "1001"
//   - error.name: "USER_NOT_FOUND"
//   - error.http_status: 404
//   - error.debug / error.user / error.admin: resolved messages
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger returns a Logger backed by logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// LogDescriptor logs d at error level.
func (l *ZapLogger) LogDescriptor(d *Descriptor) {
	if l == nil || l.logger == nil || d == nil {
		return
	}
	fields := []zap.Field{
		zap.String("error.code", d.Code.String()),
		zap.String("error.name", d.Name),
		zap.Int("error.http_status", d.HTTPStatus),
		zap.String("error.debug", d.Debug.String()),
		zap.String("error.user", d.User.String()),
	}
	if d.Admin != nil {
		fields = append(fields, zap.String("error.admin", d.Admin.String()))
	}
	if d.Data != nil {
		fields = append(fields, zap.Any("error.data", d.Data))
	}
	l.logger.Error(logMessage, fields...)
}

// LogrLogger logs descriptors through a logr.Logger, using the same keys
// as ZapLogger.
type LogrLogger struct {
	logger logr.Logger
}

// NewLogrLogger returns a Logger backed by logger.
func NewLogrLogger(logger logr.Logger) *LogrLogger {
	return &LogrLogger{logger: logger}
}

// LogDescriptor logs d as an error without a Go error value.
func (l *LogrLogger) LogDescriptor(d *Descriptor) {
	if l == nil || d == nil {
		return
	}
	keysAndValues := []interface{}{
		"error.code", d.Code.String(),
		"error.name", d.Name,
		"error.http_status", d.HTTPStatus,
		"error.debug", d.Debug.String(),
		"error.user", d.User.String(),
	}
	if d.Admin != nil {
		keysAndValues = append(keysAndValues, "error.admin", d.Admin.String())
	}
	if d.Data != nil {
		keysAndValues = append(keysAndValues, "error.data", d.Data)
	}
	l.logger.Error(nil, logMessage, keysAndValues...)
}
