package quoting

import "testing"

func TestQuoteIdent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"users", "`users`"},
		{"my collection", "`my collection`"},
		{"odd`name", "`odd\\`name`"},
		{`back\slash`, "`back\\\\slash`"},
	}
	for _, tt := range tests {
		if got := QuoteIdent(tt.in); got != tt.want {
			t.Errorf("QuoteIdent(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestQuoteString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"line\nbreak", `"line\nbreak"`},
	}
	for _, tt := range tests {
		if got := QuoteString(tt.in); got != tt.want {
			t.Errorf("QuoteString(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
