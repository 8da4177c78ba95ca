package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid     = "CONFIG_INVALID"
	ErrCodeSensorUnavailable = "SENSOR_UNAVAILABLE"
	ErrCodeRenderFailed      = "RENDER_FAILED"
	ErrCodeCommandFailed     = "COMMAND_FAILED"
	ErrCodeUnknown           = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: ErrorToJSON(err)})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var sgErr *errors.Error
	if !stderrors.As(err, &sgErr) {
		return &JSONError{
			Code:    ErrCodeUnknown,
			Message: err.Error(),
		}
	}

	out := &JSONError{
		Code:       mapErrorCode(sgErr.Code, sgErr.Message),
		Message:    sgErr.Message,
		Suggestion: sgErr.Suggestion,
	}
	if sgErr.Cause != nil {
		details := map[string]interface{}{"cause": sgErr.Cause.Error()}
		var sampleErr *graph.SampleError
		if stderrors.As(sgErr.Cause, &sampleErr) {
			details["series"] = sampleErr.Entity
		}
		out.Details = details
	}
	return out
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		// Distinguish between not found and invalid
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrSensor:
		return ErrCodeSensorUnavailable
	case errors.ErrRender:
		return ErrCodeRenderFailed
	case errors.ErrExec:
		return ErrCodeCommandFailed
	}
	return ErrCodeUnknown
}
