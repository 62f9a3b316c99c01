package textutil

import "testing"

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tabWidth int
		expect   string
	}{
		{
			name:     "no tabs returns input unchanged",
			input:    "plain text",
			tabWidth: 4,
			expect:   "plain text",
		},
		{
			name:     "leading tab expands to full stop",
			input:    "\tfunc",
			tabWidth: 4,
			expect:   "    func",
		},
		{
			name:     "tab aligns to next stop",
			input:    "ab\tcd",
			tabWidth: 4,
			expect:   "ab  cd",
		},
		{
			name:     "wide rune advances two columns",
			input:    "你\tx",
			tabWidth: 4,
			expect:   "你  x",
		},
		{
			name:     "zero tab width is a no-op",
			input:    "a\tb",
			tabWidth: 0,
			expect:   "a\tb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabs(tt.input, tt.tabWidth); got != tt.expect {
				t.Fatalf("ExpandTabs(%q, %d) = %q, want %q", tt.input, tt.tabWidth, got, tt.expect)
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text   string
		expect int
	}{
		{"", 0},
		{"abc", 3},
		{"你好", 4},
		{"a你b", 4},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.text); got != tt.expect {
			t.Fatalf("DisplayWidth(%q) = %d, want %d", tt.text, got, tt.expect)
		}
	}
}

func TestSanitizeTerminalText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "clean text untouched",
			input:  "func main() {}",
			expect: "func main() {}",
		},
		{
			name:   "escape byte replaced",
			input:  "a\x1b[31mred",
			expect: "a?[31mred",
		},
		{
			name:   "carriage return becomes space",
			input:  "line\r",
			expect: "line ",
		},
		{
			name:   "bidi override made visible",
			input:  "ab‮cd",
			expect: "ab⟪RLO⟫cd",
		},
		{
			name:   "tab passes through",
			input:  "a\tb",
			expect: "a\tb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminalText(tt.input); got != tt.expect {
				t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
