package secretbox

import "regexp"

// KeyFormat is the shape rule for one provider's API keys: a literal
// prefix, a minimum total length, and a character class for the remainder.
type KeyFormat struct {
	Prefix    string
	MinLength int
	charset   *regexp.Regexp
}

var (
	urlSafeChars = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	alphaNumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// keyFormats is the fixed provider rule set. Providers outside this map
// are rejected; extending the platform to a new provider means adding a
// row here and a matching entity enum value.
var keyFormats = map[string]KeyFormat{
	"openai":    {Prefix: "sk-", MinLength: 20, charset: urlSafeChars},
	"anthropic": {Prefix: "sk-ant-", MinLength: 24, charset: urlSafeChars},
	"google":    {Prefix: "AIza", MinLength: 39, charset: urlSafeChars},
	"cohere":    {Prefix: "", MinLength: 40, charset: alphaNumeric},
	"mistral":   {Prefix: "", MinLength: 32, charset: alphaNumeric},
}

// ValidateFormat reports whether candidate looks like a key for provider.
//
// It is a cheap pre-filter run before encryption or any upstream call; a
// false result is a user-input error, not a system error. Unknown
// providers fail closed.
func ValidateFormat(provider, candidate string) bool {
	format, ok := keyFormats[provider]
	if !ok {
		return false
	}
	return format.Match(candidate)
}

// Match reports whether candidate satisfies the rule.
func (f KeyFormat) Match(candidate string) bool {
	if len(candidate) < f.MinLength {
		return false
	}
	if len(candidate) < len(f.Prefix) || candidate[:len(f.Prefix)] != f.Prefix {
		return false
	}

	rest := candidate[len(f.Prefix):]
	if rest == "" {
		return false
	}
	return f.charset.MatchString(rest)
}
