package llm

import (
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantType      ErrorType
		wantRetryable bool
	}{
		{"nil", nil, "", false},
		{"unauthorized", errors.New("status code 401 Unauthorized"), ErrorTypeAuth, false},
		{"invalid key", errors.New("invalid api key provided"), ErrorTypeAuth, false},
		{"model missing", errors.New("model gpt-x not found"), ErrorTypeModel, false},
		{"endpoint 404", errors.New("status code 404"), ErrorTypeEndpoint, false},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeEndpoint, true},
		{"deadline", errors.New("context deadline exceeded"), ErrorTypeEndpoint, true},
		{"rate limit", errors.New("status code 429: rate limit reached"), ErrorTypeUnknown, true},
		{"server error", errors.New("status code 503"), ErrorTypeEndpoint, true},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("expected nil for nil input, got %v", got)
				}
				return
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", got.Retryable, tt.wantRetryable)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error does not unwrap to cause")
			}
		})
	}
}

func TestClassifyError_PreservesExistingError(t *testing.T) {
	original := NewError(ErrorTypeAuth, "authentication failed", false, nil)
	if got := ClassifyError(original); got != original {
		t.Errorf("expected same *Error back, got %v", got)
	}
}
