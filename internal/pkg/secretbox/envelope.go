package secretbox

import (
	"encoding/hex"
	"fmt"
)

// Envelope is the in-memory representation of one encrypted secret.
//
// The three fields are independent byte strings; an envelope is only
// meaningful with all three present and the same key that created it.
type Envelope struct {
	// Ciphertext is the encrypted payload, same length as the plaintext.
	Ciphertext []byte
	// IV is the 16-byte nonce, unique per encryption under a given key.
	IV []byte
	// AuthTag is the 16-byte GCM authentication tag.
	AuthTag []byte
}

// EncodedEnvelope is the persistence form: each field hex-encoded.
//
// This hex encoding is the stable on-disk contract; changing it is a
// breaking migration for every stored secret.
type EncodedEnvelope struct {
	Ciphertext string
	IV         string
	AuthTag    string
}

// Encode returns the hex persistence form of the envelope.
func (e Envelope) Encode() EncodedEnvelope {
	return EncodedEnvelope{
		Ciphertext: hex.EncodeToString(e.Ciphertext),
		IV:         hex.EncodeToString(e.IV),
		AuthTag:    hex.EncodeToString(e.AuthTag),
	}
}

// ParseEnvelope decodes the three hex fields read back from storage.
//
// Bad hex or wrong field lengths fail with ErrInvalidEnvelope so a
// truncated or corrupted record is rejected before any cipher work.
func ParseEnvelope(ciphertext, iv, authTag string) (Envelope, error) {
	ct, err := hex.DecodeString(ciphertext)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: ciphertext is not valid hex", ErrInvalidEnvelope)
	}

	ivb, err := hex.DecodeString(iv)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: iv is not valid hex", ErrInvalidEnvelope)
	}

	tag, err := hex.DecodeString(authTag)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: auth tag is not valid hex", ErrInvalidEnvelope)
	}

	env := Envelope{Ciphertext: ct, IV: ivb, AuthTag: tag}
	if err := env.validate(); err != nil {
		return Envelope{}, err
	}

	return env, nil
}

func (e Envelope) validate() error {
	if len(e.IV) != IVSize {
		return fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidEnvelope, IVSize, len(e.IV))
	}
	if len(e.AuthTag) != TagSize {
		return fmt.Errorf("%w: auth tag must be %d bytes, got %d", ErrInvalidEnvelope, TagSize, len(e.AuthTag))
	}
	return nil
}
