package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "collapses runs", input: "  Buy \t milk\n now ", want: "Buy milk now"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  In_Progress \n"); got != "in_progress" {
		t.Fatalf("expected in_progress, got %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	cases := map[string]bool{
		"":     true,
		"   ":  true,
		"\t\n": true,
		" a ":  false,
		"milk": false,
	}
	for input, want := range cases {
		if got := IsBlank(input); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNormalizeNewlines(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "a\r\nb", want: "a\nb"},
		{input: "a\rb\r\n", want: "a\nb\n"},
		{input: "a\nb", want: "a\nb"},
	}

	for _, tc := range cases {
		if got := NormalizeNewlines(tc.input); got != tc.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("body\n\r\n"); got != "body" {
		t.Fatalf("expected body, got %q", got)
	}
	if got := TrimTrailingNewlines("\nbody"); got != "\nbody" {
		t.Fatalf("expected leading newline kept, got %q", got)
	}
}
