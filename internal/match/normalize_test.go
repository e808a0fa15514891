package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"StaticField", "staticfield"},
		{"static_field", "staticfield"},
		{"static-field", "staticfield"},
		{"staticField", "staticfield"},
		{"STATICFIELD", "staticfield"},

		// CamelCase variations
		{"levelName", "levelname"},
		{"LevelName", "levelname"},
		{"NBTParser", "nbtparser"},
		{"getHTTPResponse", "gethttpresponse"},

		// With underscores
		{"field_1", "field1"},
		{"METHOD_12", "method12"},
		{"Server_Level", "serverlevel"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"ID", "id"},
		{"id", "id"},

		// Mixed separators
		{"server_level-ID", "serverlevelid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentWithPrefixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Accessor prefixes
		{"getSecret", "secret"},
		{"GetSecret", "secret"},
		{"setStaticField", "staticfield"},
		{"set_static_field", "staticfield"},
		{"isRunning", "running"},

		// Only one prefix is stripped
		{"getSetting", "setting"},
		{"setGetter", "getter"},

		// Should not strip if result would be empty
		{"get", "get"},
		{"Is", "is"},

		// Prefix must be a whole token
		{"settings", "settings"},
		{"getaway", "getaway"},
		{"island", "island"},

		// No prefix to strip
		{"tickCount", "tickcount"},
		{"Describe", "describe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentWithPrefixStrip(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentWithPrefixStrip(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"LevelID", []string{"Level", "ID"}},
		{"playerName", []string{"player", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"field_1", []string{"field", "1"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"URLParser", []string{"URL", "Parser"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"LevelID", []string{"level", "id"}},
		{"playerName", []string{"player", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"static_field", []string{"static", "field"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
