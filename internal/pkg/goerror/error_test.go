package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "server", err: NewServer(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "invalid format", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "invalid input", err: NewInvalidInput(errors.New("bad field")), want: http.StatusUnprocessableEntity},
		{name: "not found", err: NewBusiness("missing", CodeNotFound), want: http.StatusNotFound},
		{name: "conflict", err: NewBusiness("busy", CodeConflict), want: http.StatusConflict},
		{name: "unauthorized", err: NewBusiness("who", CodeUnauthorized), want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("error type = %T, want *Error", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Errorf("StatusCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewInvalidInput_FieldPairs(t *testing.T) {
	err := NewInvalidInput(nil, "api_key", "key does not match the expected format")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if got := gerr.Fields()["api_key"]; got != "key does not match the expected format" {
		t.Errorf("Fields()[api_key] = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewServer(inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is() = false, want the wrapped error to be reachable")
	}
}
