package command

import (
	"fmt"
	"strings"
)

// Output is the text sink a command writes to. The processor clears it at
// the start of every Execute.
type Output struct {
	buf strings.Builder
}

func (o *Output) Write(p []byte) (int, error) {
	return o.buf.Write(p)
}

func (o *Output) WriteString(s string) (int, error) {
	return o.buf.WriteString(s)
}

func (o *Output) Print(args ...any) {
	fmt.Fprint(&o.buf, args...)
}

func (o *Output) Println(args ...any) {
	fmt.Fprintln(&o.buf, args...)
}

func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(&o.buf, format, args...)
}

func (o *Output) String() string {
	return o.buf.String()
}

func (o *Output) Len() int {
	return o.buf.Len()
}

func (o *Output) Reset() {
	o.buf.Reset()
}

type binding struct {
	token   Token
	tokens  []Token
	isArray bool
}

// Context is the per-call state of one Execute: a cursor over the tokens,
// the arguments bound so far, the output sink and the caller's payload.
type Context[T any] struct {
	Out     *Output
	Payload T

	line     string
	tokens   []Token
	position int
	args     map[string]binding
}

func newContext[T any](line string, tokens []Token, out *Output, payload T) *Context[T] {
	return &Context[T]{
		Out:     out,
		Payload: payload,
		line:    line,
		tokens:  tokens,
		args:    make(map[string]binding),
	}
}

// Line returns the raw command line being executed.
func (c *Context[T]) Line() string {
	return c.line
}

// Tokens returns every token of the line, command names included.
func (c *Context[T]) Tokens() []Token {
	return c.tokens
}

// Has reports whether an argument was bound. Only meaningful for optional
// arguments; required and array arguments are always bound when an action
// runs.
func (c *Context[T]) Has(name string) bool {
	_, ok := c.args[name]
	return ok
}

// Lookup returns a single-token argument.
func (c *Context[T]) Lookup(name string) (string, bool) {
	b, ok := c.args[name]
	if !ok || b.isArray {
		return "", false
	}
	return b.token.Content, true
}

// String returns a single-token argument, or "" when it is absent or is an
// array argument.
func (c *Context[T]) String(name string) string {
	s, _ := c.Lookup(name)
	return s
}

// StringOr returns a single-token argument, or fallback when it is absent.
func (c *Context[T]) StringOr(name, fallback string) string {
	if s, ok := c.Lookup(name); ok {
		return s
	}
	return fallback
}

// Strings returns the contents of an array argument. A single-token
// argument is returned as a one-element slice.
func (c *Context[T]) Strings(name string) []string {
	toks := c.TokensOf(name)
	if toks == nil {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Content
	}
	return out
}

// TokensOf returns the tokens bound to an argument.
func (c *Context[T]) TokensOf(name string) []Token {
	b, ok := c.args[name]
	if !ok {
		return nil
	}
	if b.isArray {
		return b.tokens
	}
	return []Token{b.token}
}

func (c *Context[T]) current() (Token, bool) {
	if c.position < 0 || c.position >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.position], true
}

func (c *Context[T]) consume() Token {
	tok := c.tokens[c.position]
	c.position++
	return tok
}

func (c *Context[T]) bindToken(name string, tok Token) {
	c.args[name] = binding{token: tok}
}

func (c *Context[T]) bindArray(name string, toks []Token) {
	c.args[name] = binding{tokens: toks, isArray: true}
}

// errorAtCurrent reports kind at the current token, or just past the end of
// the line when every token has been consumed.
func (c *Context[T]) errorAtCurrent(kind Kind) *Error {
	if tok, ok := c.current(); ok {
		return newTokenError(kind, c.line, tok)
	}
	end := len(c.line)
	return newSpanError(kind, c.line, end, end+outOfBoundsWidth)
}
