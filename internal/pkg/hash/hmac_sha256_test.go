package hash

import "testing"

func TestHMACSHA256_Deterministic(t *testing.T) {
	h := NewHMACSHA256("fingerprint-secret")

	a, err := h.Hash("sk-proj-abcdefghij1234567890")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := h.Hash("sk-proj-abcdefghij1234567890")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if string(a) != string(b) {
		t.Error("same input produced different hashes")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex characters", len(a))
	}
}

func TestHMACSHA256_SecretChangesHash(t *testing.T) {
	a, _ := NewHMACSHA256("secret-a").Hash("same-input")
	b, _ := NewHMACSHA256("secret-b").Hash("same-input")

	if string(a) == string(b) {
		t.Error("different secrets produced the same hash")
	}
}

func TestHMACSHA256_Verify(t *testing.T) {
	h := NewHMACSHA256("fingerprint-secret")

	sum, err := h.Hash("sk-proj-abcdefghij1234567890")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !h.Verify(string(sum), "sk-proj-abcdefghij1234567890") {
		t.Error("Verify() = false for the original input")
	}
	if h.Verify(string(sum), "sk-proj-abcdefghij1234567891") {
		t.Error("Verify() = true for a different input")
	}
}
