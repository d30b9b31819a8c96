package entity

import "strings"

// Provider identifies a third-party model provider whose API key can be stored.
type Provider string

const (
	// ProviderUnknown is mean provider is not known / not supported.
	ProviderUnknown Provider = ""

	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderCohere    Provider = "cohere"
	ProviderMistral   Provider = "mistral"
)

// ProviderFromString parses a provider name, case-insensitively.
func ProviderFromString(s string) Provider {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderOpenAI:
		return ProviderOpenAI
	case ProviderAnthropic:
		return ProviderAnthropic
	case ProviderGoogle:
		return ProviderGoogle
	case ProviderCohere:
		return ProviderCohere
	case ProviderMistral:
		return ProviderMistral
	default:
		return ProviderUnknown
	}
}

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsUnknown() bool {
	return ProviderFromString(string(p)) == ProviderUnknown
}
