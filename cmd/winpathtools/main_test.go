package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"clasify", "classify"},
		{"classfy", "classify"},
		{"prase", "parse"},
		{"parce", "parse"},
		{"valiate", "validate"},
		{"validat", "validate"},
		{"conert", "convert"},
		{"convrt", "convert"},
		{"joi", "join"},
		{"reslove", "resolve"},
		{"versio", "version"},
		{"hep", "help"},
		{"mpc", "mcp"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"classification", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := setupConvertFlags()
	if err := fs.Parse([]string{"-t", "Windows", "-s", "file-uri", `\\host\c$\x`}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if flags.targetType != "Windows" {
		t.Errorf("targetType = %q, want Windows", flags.targetType)
	}
	if flags.targetScheme != "file-uri" {
		t.Errorf("targetScheme = %q, want file-uri", flags.targetScheme)
	}
	if fs.NArg() != 1 || fs.Arg(0) != `\\host\c$\x` {
		t.Errorf("positional args = %v", fs.Args())
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{formatText, formatJSON, formatYAML} {
		if err := validateOutputFormat(format); err != nil {
			t.Errorf("validateOutputFormat(%q) = %v, want nil", format, err)
		}
	}
	if err := validateOutputFormat("xml"); err == nil {
		t.Error("validateOutputFormat(\"xml\") = nil, want error")
	}
}
