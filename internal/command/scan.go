package command

import (
	"iter"
	"unicode/utf8"
)

// Marker is the character every command line starts with.
const Marker = "/"

type segmentKind int

const (
	segMarker segmentKind = iota
	segWord
	segQuoted
	segUnclosed
	segSeparator
)

// segment is one step of the shared scan. Word, quoted and unclosed
// segments are token bodies; separators are kept for validation only.
type segment struct {
	kind  segmentKind
	start int
	end   int
}

func (s segment) isBody() bool {
	return s.kind == segWord || s.kind == segQuoted || s.kind == segUnclosed
}

// isWordRune accepts ASCII letters, digits and '_'. Anything else,
// non-ASCII letters included, must be quoted.
func isWordRune(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

// scan walks line once, left to right. Both the tokenizer and the
// validator consume this sequence so token boundaries never disagree.
func scan(line string) iter.Seq[segment] {
	return func(yield func(segment) bool) {
		pos := 0
		if len(line) > 0 && line[0] == Marker[0] {
			if !yield(segment{kind: segMarker, start: 0, end: 1}) {
				return
			}
			pos = 1
		}

		for pos < len(line) {
			r, size := utf8.DecodeRuneInString(line[pos:])

			var seg segment
			switch {
			case isWordRune(r):
				seg = segment{kind: segWord, start: pos, end: scanWhile(line, pos+size, isWordRune)}
			case r == '"':
				end, closed := scanQuoted(line, pos)
				kind := segQuoted
				if !closed {
					kind = segUnclosed
				}
				seg = segment{kind: kind, start: pos, end: end}
			default:
				seg = segment{kind: segSeparator, start: pos, end: scanWhile(line, pos+size, isSeparatorRune)}
			}

			if !yield(seg) {
				return
			}
			pos = seg.end
		}
	}
}

func isSeparatorRune(r rune) bool {
	return r != '"' && !isWordRune(r)
}

func scanWhile(line string, pos int, accept func(rune) bool) int {
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if !accept(r) {
			break
		}
		pos += size
	}
	return pos
}

// scanQuoted finds the closing quote of the quoted region opening at start.
// Only \" and \\ are escapes; any other backslash is literal.
func scanQuoted(line string, start int) (int, bool) {
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\') {
				i++
			}
		case '"':
			return i + 1, true
		}
	}
	return len(line), false
}
