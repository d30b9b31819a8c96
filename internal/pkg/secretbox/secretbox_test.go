package secretbox

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()

	c, err := NewFromHex(strings.Repeat("00", 32))
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return c
}

func TestNewFromHex(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		if _, err := NewFromHex(""); !errors.Is(err, ErrKeyNotConfigured) {
			t.Fatalf("expected ErrKeyNotConfigured, got %v", err)
		}
		if _, err := NewFromHex("   "); !errors.Is(err, ErrKeyNotConfigured) {
			t.Fatalf("expected ErrKeyNotConfigured for blank key, got %v", err)
		}
	})

	t.Run("NotHex", func(t *testing.T) {
		if _, err := NewFromHex(strings.Repeat("zz", 32)); !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
		}
	})

	t.Run("TruncatedKey", func(t *testing.T) {
		if _, err := NewFromHex(strings.Repeat("ab", 16)); !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("expected ErrInvalidKeyLength for 16-byte key, got %v", err)
		}
	})

	t.Run("ValidKey", func(t *testing.T) {
		c, err := NewFromHex(strings.Repeat("0f", 32))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c == nil {
			t.Fatal("expected a codec")
		}
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := testCodec(t)

	plaintexts := []string{
		"x",
		"sk-test-secret-123",
		"sk-ant-REDACTED",
		strings.Repeat("a", 512),
		"clé-secrète-éàü",
		"鍵-秘密-🔑",
	}

	for _, p := range plaintexts {
		env, err := c.Encrypt(p)
		if err != nil {
			t.Fatalf("encrypt %q: %v", p, err)
		}

		if len(env.IV) != IVSize {
			t.Fatalf("iv length = %d, want %d", len(env.IV), IVSize)
		}
		if len(env.AuthTag) != TagSize {
			t.Fatalf("auth tag length = %d, want %d", len(env.AuthTag), TagSize)
		}
		if len(env.Ciphertext) != len([]byte(p)) {
			t.Fatalf("ciphertext length = %d, want %d", len(env.Ciphertext), len([]byte(p)))
		}

		got, err := c.Decrypt(env)
		if err != nil {
			t.Fatalf("decrypt %q: %v", p, err)
		}
		if got != p {
			t.Fatalf("round trip mismatch: got %q, want %q", got, p)
		}
	}
}

func TestEncryptHexRoundTrip(t *testing.T) {
	c := testCodec(t)

	env, err := c.Encrypt("sk-test-secret-123")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	enc := env.Encode()
	parsed, err := ParseEnvelope(enc.Ciphertext, enc.IV, enc.AuthTag)
	if err != nil {
		t.Fatalf("parse envelope: %v", err)
	}

	got, err := c.Decrypt(parsed)
	if err != nil {
		t.Fatalf("decrypt parsed envelope: %v", err)
	}
	if got != "sk-test-secret-123" {
		t.Fatalf("got %q, want %q", got, "sk-test-secret-123")
	}
}

func TestEncryptRandomization(t *testing.T) {
	c := testCodec(t)

	const trials = 64
	seenIVs := make(map[string]struct{}, trials)
	seenCTs := make(map[string]struct{}, trials)

	for range trials {
		env, err := c.Encrypt("same-plaintext-every-time")
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		iv := hex.EncodeToString(env.IV)
		if _, dup := seenIVs[iv]; dup {
			t.Fatalf("iv collision after %d trials", len(seenIVs))
		}
		seenIVs[iv] = struct{}{}

		ct := hex.EncodeToString(env.Ciphertext)
		if _, dup := seenCTs[ct]; dup {
			t.Fatalf("ciphertext collision after %d trials", len(seenCTs))
		}
		seenCTs[ct] = struct{}{}
	}
}

func TestTamperDetection(t *testing.T) {
	c := testCodec(t)

	env, err := c.Encrypt("sk-test-secret-123")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	flipBit := func(src []byte, i int, bit byte) []byte {
		out := bytes.Clone(src)
		out[i] ^= bit
		return out
	}

	t.Run("Ciphertext", func(t *testing.T) {
		for i := range env.Ciphertext {
			tampered := Envelope{
				Ciphertext: flipBit(env.Ciphertext, i, 0x01),
				IV:         env.IV,
				AuthTag:    env.AuthTag,
			}
			if _, err := c.Decrypt(tampered); !errors.Is(err, ErrDecryptFailed) {
				t.Fatalf("flipped ciphertext byte %d: expected ErrDecryptFailed, got %v", i, err)
			}
		}
	})

	t.Run("IV", func(t *testing.T) {
		for i := range env.IV {
			tampered := Envelope{
				Ciphertext: env.Ciphertext,
				IV:         flipBit(env.IV, i, 0x80),
				AuthTag:    env.AuthTag,
			}
			if _, err := c.Decrypt(tampered); !errors.Is(err, ErrDecryptFailed) {
				t.Fatalf("flipped iv byte %d: expected ErrDecryptFailed, got %v", i, err)
			}
		}
	})

	t.Run("AuthTag", func(t *testing.T) {
		for i := range env.AuthTag {
			tampered := Envelope{
				Ciphertext: env.Ciphertext,
				IV:         env.IV,
				AuthTag:    flipBit(env.AuthTag, i, 0x01),
			}
			if _, err := c.Decrypt(tampered); !errors.Is(err, ErrDecryptFailed) {
				t.Fatalf("flipped tag byte %d: expected ErrDecryptFailed, got %v", i, err)
			}
		}
	})
}

func TestWrongKeyRejection(t *testing.T) {
	c1, err := NewFromHex(strings.Repeat("00", 32))
	if err != nil {
		t.Fatalf("codec k1: %v", err)
	}
	c2, err := NewFromHex(strings.Repeat("ff", 32))
	if err != nil {
		t.Fatalf("codec k2: %v", err)
	}

	env, err := c1.Encrypt("secret-under-key-one")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := c2.Decrypt(env); !errors.Is(err, ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed under wrong key, got %v", err)
	}
}

func TestCorruptedAuthTagHex(t *testing.T) {
	// The concrete scenario: key 00*32, encrypt, corrupt the last hex
	// character of the encoded auth tag, decrypt must fail closed.
	c := testCodec(t)

	env, err := c.Encrypt("sk-test-secret-123")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	enc := env.Encode()
	last := enc.AuthTag[len(enc.AuthTag)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	corrupted := enc.AuthTag[:len(enc.AuthTag)-1] + string(replacement)

	parsed, err := ParseEnvelope(enc.Ciphertext, enc.IV, corrupted)
	if err != nil {
		t.Fatalf("parse envelope: %v", err)
	}

	if _, err := c.Decrypt(parsed); !errors.Is(err, ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed, got %v", err)
	}
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	c := testCodec(t)

	if _, err := c.Encrypt(""); !errors.Is(err, ErrPlaintextEmpty) {
		t.Fatalf("expected ErrPlaintextEmpty, got %v", err)
	}
}

func TestDecryptMalformedEnvelope(t *testing.T) {
	c := testCodec(t)

	env, err := c.Encrypt("sk-test-secret-123")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	t.Run("ShortIV", func(t *testing.T) {
		bad := Envelope{Ciphertext: env.Ciphertext, IV: env.IV[:8], AuthTag: env.AuthTag}
		if _, err := c.Decrypt(bad); !errors.Is(err, ErrInvalidEnvelope) {
			t.Fatalf("expected ErrInvalidEnvelope, got %v", err)
		}
	})

	t.Run("ShortTag", func(t *testing.T) {
		bad := Envelope{Ciphertext: env.Ciphertext, IV: env.IV, AuthTag: env.AuthTag[:15]}
		if _, err := c.Decrypt(bad); !errors.Is(err, ErrInvalidEnvelope) {
			t.Fatalf("expected ErrInvalidEnvelope, got %v", err)
		}
	})

	t.Run("TruncatedHex", func(t *testing.T) {
		enc := env.Encode()
		if _, err := ParseEnvelope(enc.Ciphertext[:len(enc.Ciphertext)-1], enc.IV, enc.AuthTag); !errors.Is(err, ErrInvalidEnvelope) {
			t.Fatalf("expected ErrInvalidEnvelope for odd-length hex, got %v", err)
		}
	})

	t.Run("NotHex", func(t *testing.T) {
		enc := env.Encode()
		if _, err := ParseEnvelope(enc.Ciphertext, "not-hex-at-all!!", enc.AuthTag); !errors.Is(err, ErrInvalidEnvelope) {
			t.Fatalf("expected ErrInvalidEnvelope for non-hex iv, got %v", err)
		}
	})
}
