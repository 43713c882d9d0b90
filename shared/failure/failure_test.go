package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"innsync/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestTaxonomyConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind failure.Kind
		code int
	}{
		{
			name: "StoreUnavailable",
			err:  failure.StoreUnavailable(errors.New("unable to reconnect to the database")),
			kind: failure.KindStoreUnavailable,
			code: http.StatusServiceUnavailable,
		},
		{
			name: "SchemaMigrationFailed",
			err:  failure.SchemaMigrationFailed(errors.New("no such table: city")),
			kind: failure.KindSchemaMigrationFailed,
			code: http.StatusServiceUnavailable,
		},
		{
			name: "RemoteUnreachable",
			err:  failure.RemoteUnreachable(errors.New("dial tcp: connection refused")),
			kind: failure.KindRemoteUnreachable,
			code: http.StatusBadGateway,
		},
		{
			name: "RemoteRejected",
			err:  failure.RemoteRejected(http.StatusUnauthorized, "invalid credentials"),
			kind: failure.KindRemoteRejected,
			code: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, f.Kind)
			}
			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Kind: failure.KindValidation, Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message || f.Kind != expectedF.Kind {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}
		if f.Message != "custom bad request" {
			t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("booking not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "booking not found" {
			t.Errorf("expected message to be 'booking not found', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKindAndIsKind(t *testing.T) {
	storeErr := failure.StoreUnavailable(errors.New("closed"))

	if failure.GetKind(storeErr) != failure.KindStoreUnavailable {
		t.Errorf("expected kind %s, got %s", failure.KindStoreUnavailable, failure.GetKind(storeErr))
	}
	if failure.GetKind(errors.New("plain")) != failure.KindInternal {
		t.Errorf("expected plain errors to map to %s", failure.KindInternal)
	}
	if !failure.IsKind(storeErr, failure.KindStoreUnavailable) {
		t.Error("expected IsKind to match store unavailable")
	}
	if failure.IsKind(storeErr, failure.KindRemoteRejected) {
		t.Error("expected IsKind to reject mismatched kind")
	}
}
