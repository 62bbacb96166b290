package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "words",
			line: "/invite team alice",
			want: []Token{
				{Content: "invite", Start: 1, End: 7},
				{Content: "team", Start: 8, End: 12},
				{Content: "alice", Start: 13, End: 18},
			},
		},
		{
			name: "quoted argument keeps its quotes in the span",
			line: `/say "hello world"`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: "hello world", Start: 5, End: 18, Quoted: true},
			},
		},
		{
			name: "empty quoted argument",
			line: `/say ""`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: "", Start: 5, End: 7, Quoted: true},
			},
		},
		{
			name: "escapes are resolved",
			line: `/say "a \"b\" \\c"`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: `a "b" \c`, Start: 5, End: 18, Quoted: true},
			},
		},
		{
			name: "unknown escape is literal",
			line: `/say "a\nb"`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: `a\nb`, Start: 5, End: 11, Quoted: true},
			},
		},
		{
			name: "quoted non-ascii",
			line: `/say "привет, café"`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: "привет, café", Start: 5, End: 26, Quoted: true},
			},
		},
		{
			name: "unclosed quote runs to end of line",
			line: `/say "hello`,
			want: []Token{
				{Content: "say", Start: 1, End: 4},
				{Content: "hello", Start: 5, End: 11, Quoted: true},
			},
		},
		{
			name: "marker only",
			line: "/",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeAll(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TokenizeAll(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestTokenize_NestedQuotes(t *testing.T) {
	line := `/broadcast " - /broadcast \" \\\"MAX\\\" иди знаешь куда \" -"`

	require.Nil(t, Validate(line))

	var contents []string
	for tok := range Tokenize(line) {
		contents = append(contents, tok.Content)
	}

	want := []string{"broadcast", ` - /broadcast " \"MAX\" иди знаешь куда " -`}
	if diff := cmp.Diff(want, contents); diff != "" {
		t.Errorf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_SpansAreMonotonic(t *testing.T) {
	lines := []string{
		"/invite team alice",
		`/say "a b" c "" d`,
		`/groups create "Team \"A\"" team_a`,
		"/help friends request",
		`/x "ü" ñ "日本"`,
	}

	for _, line := range lines {
		require.Nil(t, Validate(line), line)

		prevEnd := 0
		for tok := range Tokenize(line) {
			require.GreaterOrEqual(t, tok.Start, prevEnd, "%s: %v", line, tok)
			require.Greater(t, tok.End, tok.Start, "%s: %v", line, tok)
			require.LessOrEqual(t, tok.End, len(line))
			prevEnd = tok.End
		}
	}
}

func TestTokenize_StopsEarly(t *testing.T) {
	var got []string
	for tok := range Tokenize("/a b c d") {
		got = append(got, tok.Content)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func TestToken_IsFunctional(t *testing.T) {
	require.True(t, Token{Content: "list"}.IsFunctional("list"))
	require.False(t, Token{Content: "list", Quoted: true}.IsFunctional("list"))
	require.True(t, Token{Content: "list", Quoted: true}.Is("list"))
	require.False(t, Token{Content: "lists"}.IsFunctional("list"))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"чат_1", `"чат_1"`},
		{"", `""`},
		{"hello world", `"hello world"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"127.0.0.1:7777", `"127.0.0.1:7777"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "two words", `q"uote`, `back\slash`, `\"`, ""} {
		line := Line("say", s)
		require.Nil(t, Validate(line), line)

		tokens := TokenizeAll(line)
		require.Len(t, tokens, 2, line)
		require.Equal(t, s, tokens[1].Content)
	}
}

func TestLine(t *testing.T) {
	require.Equal(t, "/config set theme dark", Line("config", "set", "theme", "dark"))
	require.Equal(t, `/connect "localhost:7777"`, Line("connect", "localhost:7777"))
}
