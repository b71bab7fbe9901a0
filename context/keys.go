package context

import "errors"

// CTXKey - a type for context keys
type CTXKey string

const (
	// EnvironmentCTXKey - the key used for the running environment
	EnvironmentCTXKey CTXKey = "environment"
	// LogLevelCTXKey - context key for application logging level
	LogLevelCTXKey CTXKey = "log_level"
	// DebugLoggingCTXKey - context key for debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"
	// LogWriterCTXKey - context key for the log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// LoggerCTXKey - context key for a configured logger
	LoggerCTXKey CTXKey = "logger"
	// StrictDecodingCTXKey - context key for rejecting unknown fields while decoding gateway payloads
	StrictDecodingCTXKey CTXKey = "strict_decoding"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context.
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something, and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)
