package repository

import (
	"testing"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain keyword", in: "tesla", want: "tesla"},
		{name: "percent", in: "100%", want: `100\%`},
		{name: "underscore", in: "model_3", want: `model\_3`},
		{name: "backslash", in: `c:\cars`, want: `c:\\cars`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeLike(tt.in); got != tt.want {
				t.Errorf("escapeLike(%q) got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
