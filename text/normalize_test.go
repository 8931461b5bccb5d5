package text

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Introduction", "Introduction"},
		{"collapse spaces", "a   b\t\tc", "a b c"},
		{"newlines", "line one\nline two", "line one line two"},
		{"leading trailing", "  padded  ", "padded"},
		{"fi ligature", "ﬁnancial", "financial"},
		{"fl ligature", "ﬂow chart", "flow chart"},
		{"both ligatures", "ﬁrst ﬂoor", "first floor"},
		{"nbsp collapses", "a b", "a b"},
		{"fullwidth digits", "１２３", "123"},
		{"cjk preserved", "第1章 はじめに", "第1章 はじめに"},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"ﬁnancial  ﬂow",
		"  1.2   Scope  ",
		"第1章　概要",
		"Mixed CASE with 123",
	}

	for _, s := range inputs {
		once := Clean(s)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"one", 1},
		{"3.2 Methodology", 2},
		{"a b  c\td", 4},
	}

	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAllCaps(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"JOIN US!", true},
		{"HOPE TO SEE YOU THERE", true},
		{"Join us", false},
		{"JOIN Us", false},
		{"1234!", false},
		{"", false},
		{"A", true},
	}

	for _, tt := range tests {
		if got := AllCaps(tt.input); got != tt.want {
			t.Errorf("AllCaps(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123", true},
		{"12a", false},
		{"", false},
		{"1.2", false},
	}

	for _, tt := range tests {
		if got := IsDigits(tt.input); got != tt.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEndsWithAny(t *testing.T) {
	if !EndsWithAny("Scope:", ".", ":", ";") {
		t.Error("EndsWithAny should match trailing colon")
	}
	if EndsWithAny("Scope", ".", ":", ";") {
		t.Error("EndsWithAny should not match bare word")
	}
}
