package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "login", b: "login", want: 0},
		{name: "one character difference", a: "login", b: "logins", want: 1},
		{name: "transposition", a: "login", b: "lgoin", want: 2},
		{name: "empty string a", a: "", b: "open", want: 4},
		{name: "empty string b", a: "open", b: "", want: 4},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "LOGOUT", b: "logout", want: 0},
		{name: "multibyte runes count once", a: "чат", b: "чаты", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestProcessor_Suggest(t *testing.T) {
	p := newTestProcessor(t)

	require.Equal(t, []string{"logout"}, p.Suggest("logot", 3))
	require.Equal(t, []string{"groups"}, p.Suggest("group", 3))
	require.Equal(t, []string{"help"}, p.Suggest("hepl", 1))
	require.Empty(t, p.Suggest("xyzzyplugh", 3))

	// Invisible roots are never suggested.
	require.NotContains(t, p.Suggest("confirn", 3), "confirm")
}

func TestProcessor_SuggestLimit(t *testing.T) {
	p := NewProcessor[struct{}]()
	for _, name := range []string{"open", "opens", "opened", "close"} {
		p.MustRegister(name, func(b *Builder[struct{}]) { b.Executes(func(*Context[struct{}]) {}) })
	}

	require.Equal(t, []string{"open", "opens"}, p.Suggest("ope", 2))
	require.Empty(t, p.Suggest("ope", 0))
}
