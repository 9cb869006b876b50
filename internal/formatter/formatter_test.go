package formatter

import "testing"

func TestUpper_Format(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase words", in: "hello world", want: "HELLO WORLD"},
		{name: "mixed case", in: "Hello World", want: "HELLO WORLD"},
		{name: "already uppercase", in: "HELLO", want: "HELLO"},
		{name: "empty", in: "", want: ""},
		{name: "digits and punctuation untouched", in: "abc-123!", want: "ABC-123!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Upper{}.Format(tt.in)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLower_Format(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "uppercase words", in: "HELLO WORLD", want: "hello world"},
		{name: "mixed case", in: "Hello World", want: "hello world"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lower{}.Format(tt.in)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitle_Format(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "hello world", want: "Hello World"},
		{name: "shouting input", in: "HELLO WORLD", want: "Hello World"},
		{name: "hyphen is not a separator", in: "  hello-world  ", want: "  Hello-world  "},
		{name: "single word", in: "go", want: "Go"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only collapses to empty", in: "   ", want: ""},
		{name: "tab stays inside its word", in: "a\tb c", want: "A\tb C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title{}.Format(tt.in)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReverse_Format(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed case keeps positions", in: "Ana", want: "anA"},
		{name: "sentence", in: "hello world", want: "dlrow olleh"},
		{name: "empty", in: "", want: ""},
		{name: "single rune", in: "x", want: "x"},
		{name: "multibyte runes", in: "héllo", want: "olléh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reverse{}.Format(tt.in)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	inputs := []string{"", "a", "Ana", "hello world", "héllo wörld", "  spaced  "}
	for _, in := range inputs {
		got := Reverse{}.Format(Reverse{}.Format(in))
		if got != in {
			t.Errorf("reverse(reverse(%q)) = %q, want the input back", in, got)
		}
	}
}

func TestCaseFolding_Idempotence(t *testing.T) {
	inputs := []string{"", "MiXeD CaSe", "hello", "HELLO", "abc-123"}
	for _, in := range inputs {
		upper := Upper{}
		lower := Lower{}

		if got, want := upper.Format(lower.Format(in)), upper.Format(in); got != want {
			t.Errorf("upper(lower(%q)) = %q, want %q", in, got, want)
		}
		if got, want := lower.Format(upper.Format(in)), lower.Format(in); got != want {
			t.Errorf("lower(upper(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestPlain_Format(t *testing.T) {
	inputs := []string{"", "Test", "  spaced  ", "MiXeD"}
	for _, in := range inputs {
		if got := (Plain{}).Format(in); got != in {
			t.Errorf("Format(%q) = %q, want input unchanged", in, got)
		}
	}
}
