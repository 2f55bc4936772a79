package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRequestID is the structured log field key for the id of a single match run.
	FieldRequestID = "request_id"
	// FieldOccupationCode is the structured log field key for the requested occupation code.
	FieldOccupationCode = "occupation_code"
	// FieldOccupationPrefix is the structured log field key for the two-character sector key.
	FieldOccupationPrefix = "occupation_prefix"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RequestFields returns the fields identifying one match run.
// Empty values are ignored to keep log entries compact when information is missing.
func RequestFields(requestID, occupationCode, occupationPrefix string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRequestID, Value: requestID},
		StringField{Key: FieldOccupationCode, Value: occupationCode},
		StringField{Key: FieldOccupationPrefix, Value: occupationPrefix},
	)
}

// WithRequest attaches the match run fields to the provided logger.
func WithRequest(logger *zap.Logger, requestID, occupationCode, occupationPrefix string) *zap.Logger {
	return WithFields(logger, RequestFields(requestID, occupationCode, occupationPrefix)...)
}
