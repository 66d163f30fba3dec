package languages

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "english", code: "en", want: "English"},
		{name: "german", code: "de", want: "German"},
		{name: "upper case", code: "FR", want: "French"},
		{name: "mixed case", code: "Ja", want: "Japanese"},
		{name: "unknown code", code: "xx", want: "xx"},
		{name: "empty", code: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.code); got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestResolveCoversWholeTable(t *testing.T) {
	for code, want := range displayNames {
		if got := Resolve(code); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", code, got, want)
		}
	}
}
