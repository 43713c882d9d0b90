package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure beyond its HTTP-ish code so callers can branch on
// the cause without string matching.
type Kind string

const (
	KindStoreUnavailable      Kind = "store_unavailable"
	KindSchemaMigrationFailed Kind = "schema_migration_failed"
	KindRemoteUnreachable     Kind = "remote_unreachable"
	KindRemoteRejected        Kind = "remote_rejected"
	KindValidation            Kind = "validation"
	KindNotFound              Kind = "not_found"
	KindInternal              Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// StoreUnavailable returns a Failure for an embedded store that could not be
// opened or reopened. Local-read fallbacks must surface this as "offline data
// unavailable" rather than crash.
func StoreUnavailable(err error) error {
	return &Failure{
		Kind:    KindStoreUnavailable,
		Code:    http.StatusServiceUnavailable,
		Message: err.Error(),
	}
}

// SchemaMigrationFailed returns a Failure for a migration error. Migration
// failures are logged at startup and not fatal; repository calls hitting a
// missing table are treated as store-unavailable by callers.
func SchemaMigrationFailed(err error) error {
	return &Failure{
		Kind:    KindSchemaMigrationFailed,
		Code:    http.StatusServiceUnavailable,
		Message: err.Error(),
	}
}

// RemoteUnreachable returns a Failure for a transport-level error talking to
// the remote API.
func RemoteUnreachable(err error) error {
	return &Failure{
		Kind:    KindRemoteUnreachable,
		Code:    http.StatusBadGateway,
		Message: err.Error(),
	}
}

// RemoteRejected returns a Failure for a non-2xx remote response, carrying the
// server's status code and message.
func RemoteRejected(code int, msg string) error {
	return &Failure{
		Kind:    KindRemoteRejected,
		Code:    code,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or KindInternal for
// plain errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
