package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidProfileURL = "INVALID_PROFILE_URL"
	CodeProfileNotFound   = "PROFILE_NOT_FOUND"
	CodeProfileEmpty      = "PROFILE_EMPTY"
	CodeNetwork           = "NETWORK_ERROR"
	CodeLLMRequest        = "LLM_REQUEST_ERROR"
	CodeLLMEmptyResponse  = "LLM_EMPTY_RESPONSE"
	CodeMissingCredential = "MISSING_CREDENTIAL"
	CodeConfig            = "CONFIG_ERROR"
)

type AnalyzerError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AnalyzerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalyzerError) Unwrap() error {
	return e.Cause
}

func NewAnalyzerError(message, code string, statusCode int, context map[string]any) *AnalyzerError {
	return &AnalyzerError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AnalyzerError) WithCause(cause error) *AnalyzerError {
	e.Cause = cause
	return e
}

// CodeOf reports the analyzer error code carried by err, or "" when err
// does not wrap an AnalyzerError.
func CodeOf(err error) string {
	var ae *AnalyzerError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// StatusCodeOf reports the HTTP status carried by err, or 0 when err does
// not wrap an AnalyzerError or no status was recorded.
func StatusCodeOf(err error) int {
	var ae *AnalyzerError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

func NewInvalidProfileURLError(url string) *AnalyzerError {
	return &AnalyzerError{
		Message:    "invalid Reddit profile URL",
		Code:       CodeInvalidProfileURL,
		StatusCode: 400,
		Context: map[string]any{
			"url": url,
		},
	}
}

func NewProfileNotFoundError(username string) *AnalyzerError {
	return &AnalyzerError{
		Message:    fmt.Sprintf("profile %q not found", username),
		Code:       CodeProfileNotFound,
		StatusCode: 404,
		Context: map[string]any{
			"username": username,
		},
	}
}

func NewProfileEmptyError(username string) *AnalyzerError {
	return &AnalyzerError{
		Message: fmt.Sprintf("no posts or comments found for %q; the profile might be private or doesn't exist", username),
		Code:    CodeProfileEmpty,
		Context: map[string]any{
			"username": username,
		},
	}
}

func NewNetworkError(message string, statusCode int, cause error) *AnalyzerError {
	return &AnalyzerError{
		Message:    message,
		Code:       CodeNetwork,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

func NewLLMRequestError(provider string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Message: fmt.Sprintf("LLM request to %s failed", provider),
		Code:    CodeLLMRequest,
		Context: map[string]any{
			"provider": provider,
		},
		Cause: cause,
	}
}

func NewLLMEmptyResponseError(provider string) *AnalyzerError {
	return &AnalyzerError{
		Message: fmt.Sprintf("LLM provider %s returned an empty completion", provider),
		Code:    CodeLLMEmptyResponse,
		Context: map[string]any{
			"provider": provider,
		},
	}
}

func NewMissingCredentialError(name string) *AnalyzerError {
	return &AnalyzerError{
		Message: fmt.Sprintf("%s environment variable not set", name),
		Code:    CodeMissingCredential,
		Context: map[string]any{
			"credential": name,
		},
	}
}

func NewConfigError(message, field string, value any) *AnalyzerError {
	return &AnalyzerError{
		Message:    message,
		Code:       CodeConfig,
		StatusCode: 400,
		Context: map[string]any{
			"field": field,
			"value": value,
		},
	}
}
