package entity

import "testing"

func TestProviderFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Provider
	}{
		{"openai", ProviderOpenAI},
		{"OpenAI", ProviderOpenAI},
		{"  anthropic ", ProviderAnthropic},
		{"GOOGLE", ProviderGoogle},
		{"cohere", ProviderCohere},
		{"mistral", ProviderMistral},
		{"", ProviderUnknown},
		{"replicate", ProviderUnknown},
	}

	for _, tc := range tests {
		if got := ProviderFromString(tc.in); got != tc.want {
			t.Errorf("ProviderFromString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProviderIsUnknown(t *testing.T) {
	if ProviderOpenAI.IsUnknown() {
		t.Error("ProviderOpenAI.IsUnknown() = true, want false")
	}
	if !ProviderUnknown.IsUnknown() {
		t.Error("ProviderUnknown.IsUnknown() = false, want true")
	}
}
