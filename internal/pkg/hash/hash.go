// Package hash provides keyed hashing for secret fingerprints.
//
// The credential module stores an HMAC of each plaintext API key so a
// re-submitted key can be recognized without decrypting anything. Only the
// hash is persisted, never the input.
package hash

// Hash computes and verifies keyed hashes.
type Hash interface {
	// Hash returns the hash of the input string.
	Hash(str string) ([]byte, error)
	// Verify reports whether str matches the previously produced hash.
	Verify(hashed, str string) bool
}
