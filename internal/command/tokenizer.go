package command

import (
	"iter"
	"strings"
)

// Tokenize splits line into tokens in source order. Separator runs and the
// leading marker are dropped.
//
// Run Validate first: on rejected input the sequence is still finite and
// never panics, but an unclosed quote is surfaced as a quoted token running
// to the end of the line.
func Tokenize(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for seg := range scan(line) {
			var tok Token
			switch seg.kind {
			case segWord:
				tok = Token{Content: line[seg.start:seg.end], Start: seg.start, End: seg.end}
			case segQuoted:
				tok = Token{
					Content: unescape(line[seg.start+1 : seg.end-1]),
					Start:   seg.start,
					End:     seg.end,
					Quoted:  true,
				}
			case segUnclosed:
				tok = Token{
					Content: unescape(line[seg.start+1 : seg.end]),
					Start:   seg.start,
					End:     seg.end,
					Quoted:  true,
				}
			default:
				continue
			}

			if !yield(tok) {
				return
			}
		}
	}
}

// TokenizeAll collects Tokenize into a slice.
func TokenizeAll(line string) []Token {
	var tokens []Token
	for tok := range Tokenize(line) {
		tokens = append(tokens, tok)
	}
	return tokens
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Quote renders s as a single token: bare when it is a plain word,
// otherwise double-quoted with " and \ escaped.
func Quote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return !isWordRune(r) }) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Line builds a command line from a command path and its arguments,
// quoting each part as needed.
func Line(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = Quote(p)
	}
	return Marker + strings.Join(quoted, " ")
}
