package command

// Validate checks the lexical structure of line before it is tokenized for
// execution. It returns nil for a syntactically valid line; the line may
// still name an unknown command.
//
// Problems are reported in the order they appear in the line:
//
//   - empty line, or a line with no token at all
//   - two tokens with no separation between them
//   - a quote that is never closed
//   - a separator that is not an ASCII space
//   - a separator longer than one space
func Validate(line string) *Error {
	if line == "" {
		return newSpanError(EmptyCommand, line, 0, 0)
	}

	var (
		prev   segment
		bodies int
	)

	for seg := range scan(line) {
		switch seg.kind {
		case segWord, segQuoted, segUnclosed:
			if bodies > 0 && prev.isBody() {
				return newSpanError(NoSeparation, line, seg.start, seg.end)
			}
			if seg.kind == segUnclosed {
				return newSpanError(UnclosedQuote, line, seg.start, len(line))
			}
			bodies++

		case segSeparator:
			if line[seg.start] != ' ' {
				return newSpanError(InvalidSeparator, line, seg.start, seg.end)
			}
			if seg.end-seg.start > 1 {
				return newSpanError(UnexpectedSymbol, line, seg.start+1, seg.end)
			}
		}
		prev = seg
	}

	if bodies == 0 {
		return newSpanError(EmptyCommand, line, 0, len(line))
	}
	return nil
}
