package style

import (
	"strings"

	"github.com/fsbteam/chat/internal/command"
)

// Explain renders a command error as its message followed, for spanned
// errors, by the offending line and a caret row under the span.
func Explain(err *command.Error) string {
	if err == nil {
		return ""
	}
	if !err.HasSpan() {
		return Error(err.Message)
	}

	text, carets := err.Diagram()
	var b strings.Builder
	b.WriteString(Error(err.Message))
	b.WriteByte('\n')
	b.WriteString(Muted(text))
	b.WriteByte('\n')
	b.WriteString(Warning(carets))
	return b.String()
}
