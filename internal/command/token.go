package command

import "fmt"

// Token is a lexical unit recovered from a command line.
// Start and End are byte offsets into the original line, End exclusive.
// For quoted tokens the span includes both quotes while Content holds the
// unescaped text between them.
type Token struct {
	Content string
	Start   int
	End     int
	Quoted  bool
}

// Is reports whether the token content equals s.
func (t Token) Is(s string) bool {
	return t.Content == s
}

// IsFunctional reports whether the token can act as a keyword for s.
// Quoting a word disables its ability to be recognized as a subcommand.
func (t Token) IsFunctional(s string) bool {
	return !t.Quoted && t.Content == s
}

func (t Token) String() string {
	if t.Quoted {
		return fmt.Sprintf("%q[%d:%d]", t.Content, t.Start, t.End)
	}
	return fmt.Sprintf("%s[%d:%d]", t.Content, t.Start, t.End)
}
