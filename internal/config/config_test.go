package config

import "testing"

func TestNormalizeStoreType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "s3", want: "s3"},
		{raw: " S3 ", want: "s3"},
		{raw: "memory", want: "memory"},
		{raw: "local", want: "local"},
		{raw: "", want: "local"},
		{raw: "postgres", want: "local"},
	}
	for _, tt := range tests {
		if got := normalizeStoreType(tt.raw); got != tt.want {
			t.Fatalf("normalizeStoreType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeProvider(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "gemini", want: "gemini"},
		{raw: "OpenAI", want: "openai"},
		{raw: "none", want: "placeholder"},
		{raw: "", want: "gemini"},
		{raw: "anthropic", want: "gemini"},
	}
	for _, tt := range tests {
		if got := normalizeProvider(tt.raw); got != tt.want {
			t.Fatalf("normalizeProvider(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" http://a , ,http://b")
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("splitAndTrim returned %v", got)
	}
}
