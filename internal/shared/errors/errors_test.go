package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad input", nil), KindValidation},
		{"transport", Transport(errors.New("connection refused")), KindTransport},
		{"server", Server(500, "boom"), KindServer},
		{"schema", Schema("missing key"), KindSchema},
		{"conflict", Conflict("in flight"), KindConflict},
		{"plain error", errors.New("whatever"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	if !errors.Is(Transport(errors.New("refused")), ErrTransport) {
		t.Error("transport error should match ErrTransport")
	}

	if !errors.Is(Server(502, ""), ErrServer) {
		t.Error("server error should match ErrServer")
	}
}

func TestWrapPreservesKind(t *testing.T) {
	wrapped := Wrap(Schema("missing key"), "prediction failed")

	if wrapped.Kind != KindSchema {
		t.Errorf("expected kind %v, got %v", KindSchema, wrapped.Kind)
	}

	if wrapped.Message != "prediction failed: missing key" {
		t.Errorf("unexpected message: %s", wrapped.Message)
	}
}

func TestServerDetails(t *testing.T) {
	err := Server(503, "service warming up")

	if err.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502 toward the caller, got %d", err.HTTPStatus)
	}

	if err.Details["upstream_status"] != "503" {
		t.Errorf("expected upstream_status 503, got %s", err.Details["upstream_status"])
	}

	if err.Details["upstream_body"] != "service warming up" {
		t.Errorf("unexpected upstream_body: %s", err.Details["upstream_body"])
	}
}

func TestValidationDetails(t *testing.T) {
	err := Validation("invalid form input", map[string]string{"age": "is required"})

	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}

	if err.Details["age"] != "is required" {
		t.Error("field details should be preserved")
	}
}
