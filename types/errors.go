package types

import (
	"errors"
	"fmt"
)

const (
	MSG_UPLOAD_FAILED = "Failed uploading dSYM to AppDynamics"
	MSG_UPLOAD_ERROR  = "Error while trying to upload dSYM to AppDynamics"
)

// APIError represents a non-2xx response from the ingestion API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("APIError: %d", e.StatusCode)
	}
	return fmt.Sprintf("APIError: %d: %s", e.StatusCode, e.Message)
}

// ConfigurationError reports a missing or unusable option. Nothing has been
// read from disk or sent over the network when it is returned.
type ConfigurationError struct {
	Option string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Option != "" {
		msg = fmt.Sprintf("%s: %s", e.Option, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ErrNotRegularFile marks a resolved path that exists but is a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// MissingFileError names the first resolved path that is not a regular file.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	if errors.Is(e.Err, ErrNotRegularFile) {
		return "dSYM at path is not a regular file (zip the .dSYM bundle first): " + e.Path
	}
	return "dSYM does not exist at path: " + e.Path
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// UploadError is the terminal error of a run whose upload failed. Err is
// either an *APIError (the server answered with a non-2xx status) or the
// transport/IO error that interrupted the request.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	if apiErr, ok := e.Err.(*APIError); ok {
		return fmt.Sprintf("%s (HTTP %d)", MSG_UPLOAD_FAILED, apiErr.StatusCode)
	}
	return fmt.Sprintf("%s: %v", MSG_UPLOAD_ERROR, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of a rejected upload, or 0 when the
// request never got a response.
func (e *UploadError) StatusCode() int {
	if apiErr, ok := e.Err.(*APIError); ok {
		return apiErr.StatusCode
	}
	return 0
}
