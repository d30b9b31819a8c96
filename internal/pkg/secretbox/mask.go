package secretbox

// maskMinLength is the shortest secret for which partial characters may be
// shown; anything shorter is fully redacted.
const maskMinLength = 12

// maskPlaceholder is returned for secrets too short to partially reveal.
const maskPlaceholder = "***"

// Mask redacts a secret for display.
//
// Secrets shorter than 12 characters become "***". Longer secrets keep the
// first 8 and last 4 characters with "..." in between, so a user can
// recognize a previously saved key without the server ever re-sending it.
// Counted in runes, so multi-byte input never yields broken UTF-8.
func Mask(plaintext string) string {
	runes := []rune(plaintext)
	if len(runes) < maskMinLength {
		return maskPlaceholder
	}
	return string(runes[:8]) + "..." + string(runes[len(runes)-4:])
}
