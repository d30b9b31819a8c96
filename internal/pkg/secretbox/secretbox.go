package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the GCM nonce length in bytes. It is 16 (not Go's default
	// 12) because the stored-envelope contract was fixed with 16-byte IVs.
	IVSize = 16
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

var (
	// ErrKeyNotConfigured indicates the encryption key is absent.
	ErrKeyNotConfigured = errors.New("secretbox: encryption key is not configured")
	// ErrInvalidKeyLength indicates the key does not decode to 32 bytes.
	ErrInvalidKeyLength = errors.New("secretbox: encryption key must decode to exactly 32 bytes")
	// ErrPlaintextEmpty indicates an empty plaintext input.
	ErrPlaintextEmpty = errors.New("secretbox: plaintext is empty")
	// ErrEncryptFailed indicates an unexpected failure on the encrypt path.
	ErrEncryptFailed = errors.New("secretbox: encrypt failed")
	// ErrInvalidEnvelope indicates a malformed envelope (bad hex or wrong
	// field length).
	ErrInvalidEnvelope = errors.New("secretbox: envelope is malformed")
	// ErrDecryptFailed indicates tag verification failure. It is returned
	// as-is for tampered data, a wrong key, and corrupted ciphertext alike.
	ErrDecryptFailed = errors.New("secretbox: decrypt failed")
)

// Codec encrypts and decrypts secrets with a process-wide AES-256 key.
//
// A Codec is immutable after construction and safe for concurrent use:
// every call allocates its own buffers and the key is never rewritten.
type Codec struct {
	key []byte
}

// New constructs a Codec from raw key bytes. The key must be exactly
// KeySize bytes; the Codec keeps its own copy.
func New(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, ErrKeyNotConfigured
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("secretbox: got %d key bytes: %w", len(key), ErrInvalidKeyLength)
	}

	k := make([]byte, KeySize)
	copy(k, key)

	return &Codec{key: k}, nil
}

// NewFromHex constructs a Codec from the configured hex representation of
// the key (64 hex characters). An empty value is a configuration error.
func NewFromHex(hexKey string) (*Codec, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, ErrKeyNotConfigured
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("secretbox: key is not valid hex: %w", ErrInvalidKeyLength)
	}

	return New(key)
}

// Encrypt seals plaintext with AES-256-GCM under a fresh random 16-byte IV.
//
// Two calls with the same plaintext produce different IVs and ciphertexts.
// Errors never contain the plaintext.
func (c *Codec) Encrypt(plaintext string) (Envelope, error) {
	if c == nil || len(c.key) != KeySize {
		return Envelope{}, ErrKeyNotConfigured
	}
	if plaintext == "" {
		return Envelope{}, ErrPlaintextEmpty
	}

	gcm, err := c.aead()
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrEncryptFailed, err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return Envelope{}, fmt.Errorf("%w: iv generation: %v", ErrEncryptFailed, err)
	}

	// Seal appends ciphertext+tag; the tag is split off so the envelope
	// carries it as its own field.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return Envelope{
		Ciphertext: sealed[:len(sealed)-TagSize],
		IV:         iv,
		AuthTag:    sealed[len(sealed)-TagSize:],
	}, nil
}

// Decrypt opens an envelope and returns the plaintext.
//
// Tag verification runs before any plaintext is returned; on any failure
// the result is an error and an empty string, never partial plaintext.
func (c *Codec) Decrypt(env Envelope) (string, error) {
	if c == nil || len(c.key) != KeySize {
		return "", ErrKeyNotConfigured
	}
	if err := env.validate(); err != nil {
		return "", err
	}

	gcm, err := c.aead()
	if err != nil {
		return "", ErrDecryptFailed
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.AuthTag...)

	plain, err := gcm.Open(nil, env.IV, sealed, nil)
	if err != nil {
		// Deliberately opaque: do not reveal whether the key, the IV, the
		// ciphertext, or the tag was wrong.
		return "", ErrDecryptFailed
	}

	return string(plain), nil
}

func (c *Codec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, IVSize)
}
