package command

import (
	"fmt"
	"strings"
)

// HelpCommand is the name of the command every processor registers for
// itself.
const HelpCommand = "help"

// Processor owns a set of root commands and runs lines against them.
//
// A Processor is not safe for concurrent Execute calls: the output buffer
// and the last error belong to the most recent call. Give every
// connection or input loop its own instance.
type Processor[T any] struct {
	roots  []*Command[T]
	byName map[string]*Command[T]

	out     Output
	lastErr *Error
}

// NewProcessor returns a processor with the help command registered.
func NewProcessor[T any]() *Processor[T] {
	p := &Processor[T]{byName: make(map[string]*Command[T])}
	p.MustRegister(HelpCommand, p.declareHelp)
	return p
}

// Register builds and adds a root command. Registration errors are
// programmer errors and are returned before anything is added.
func (p *Processor[T]) Register(name string, declare func(b *Builder[T])) error {
	if _, exists := p.byName[name]; exists {
		return fmt.Errorf("command %q is already registered", name)
	}

	b := NewBuilder[T](name)
	if declare != nil {
		declare(b)
	}
	cmd, err := b.Build()
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	p.roots = append(p.roots, cmd)
	p.byName[name] = cmd
	return nil
}

// MustRegister is Register for static registration code; it panics on error.
func (p *Processor[T]) MustRegister(name string, declare func(b *Builder[T])) {
	if err := p.Register(name, declare); err != nil {
		panic(err)
	}
}

// Execute runs line with payload. It returns nil when a command action ran.
func (p *Processor[T]) Execute(line string, payload T) *Error {
	p.out.Reset()
	p.lastErr = p.execute(line, payload)
	return p.lastErr
}

func (p *Processor[T]) execute(line string, payload T) *Error {
	if !strings.HasPrefix(line, Marker) || line == Marker || strings.HasPrefix(line, Marker+Marker) {
		return newSpanError(NotACommand, line, 0, len(line))
	}

	if err := Validate(line); err != nil {
		return err
	}

	tokens := TokenizeAll(line)
	if len(tokens) == 0 {
		return newSpanError(EmptyCommand, line, 0, len(line))
	}

	first := tokens[0]
	root, ok := p.byName[first.Content]
	if !ok {
		return newTokenError(CommandNotFound, line, first)
	}
	if root.phantom != nil {
		return root.PhantomError()
	}

	ctx := newContext(line, tokens, &p.out, payload)
	err := root.resolve(ctx)
	if err != nil && root.invisible {
		return newTokenError(CommandNotFound, line, first)
	}
	return err
}

// Output returns what the last executed command printed.
func (p *Processor[T]) Output() string {
	return p.out.String()
}

// LastError returns the result of the last Execute.
func (p *Processor[T]) LastError() *Error {
	return p.lastErr
}

// Roots returns the registered root commands in registration order,
// invisible ones included.
func (p *Processor[T]) Roots() []*Command[T] {
	return append([]*Command[T](nil), p.roots...)
}

// Lookup walks path by literal name from the visible roots.
func (p *Processor[T]) Lookup(path ...string) (*Command[T], bool) {
	if len(path) == 0 {
		return nil, false
	}
	cmd, ok := p.byName[path[0]]
	if !ok || cmd.invisible {
		return nil, false
	}
	for _, name := range path[1:] {
		if cmd, ok = cmd.Child(name); !ok {
			return nil, false
		}
	}
	return cmd, true
}

// IsKnown reports whether name is a visible root, phantom or not.
func (p *Processor[T]) IsKnown(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}
