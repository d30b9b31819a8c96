package validator

import (
	"errors"
	"strings"
	"testing"
)

type apiKeyPayload struct {
	APIKey string `validate:"required,apikey"`
}

func TestV10Validator_APIKeyRule(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "typical key", key: "sk-proj-abcdefghij1234567890"},
		{name: "minimum length", key: "12345678"},
		{name: "maximum length", key: strings.Repeat("a", 512)},
		{name: "empty", key: "", wantErr: true},
		{name: "too short", key: "1234567", wantErr: true},
		{name: "too long", key: strings.Repeat("a", 513), wantErr: true},
		{name: "embedded space", key: "sk-proj abcdefghij", wantErr: true},
		{name: "embedded newline", key: "sk-proj\nabcdefghij", wantErr: true},
		{name: "non ascii", key: "sk-proj-abcdéfghij", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(apiKeyPayload{APIKey: tc.key})
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr = %v", tc.key, err, tc.wantErr)
			}
		})
	}
}

func TestV10Validator_FieldErrorKeysAreSnakeCase(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	err = v.Validate(apiKeyPayload{})
	if err == nil {
		t.Fatal("Validate() error = nil, want required failure")
	}

	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want V10ValidationError", err)
	}
	if _, ok := verr.Values()["api_key"]; !ok {
		t.Errorf("Values() = %v, want an api_key entry", verr.Values())
	}
}
