package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrParseFlags    ErrorCode = "parse_flags_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Measurement errors
	ErrInvalidInput  ErrorCode = "invalid_input"
	ErrInvalidFormat ErrorCode = "invalid_format"
	ErrNoData        ErrorCode = "no_data"

	// Application errors
	ErrInitApp  ErrorCode = "init_app_failed"
	ErrPipeline ErrorCode = "pipeline_failed"
	ErrExport   ErrorCode = "export_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrReadConfig:      "Failed to read configuration",
	ErrParseFlags:      "Failed to parse flags",
	ErrInvalidLogLevel: "Invalid log level",
	ErrInvalidInput:    "Invalid measurement input",
	ErrInvalidFormat:   "Invalid export format",
	ErrNoData:          "No recorded data available",
	ErrInitApp:         "Failed to initialize application",
	ErrPipeline:        "Failed to run measurement pipeline",
	ErrExport:          "Failed to export history",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
