package command

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPhantomMessage is used by Phantom when no message is given.
const DefaultPhantomMessage = "Command is unavailable."

// Builder collects the declaration of one command. Mistakes are recorded
// as they happen and reported together by Build.
type Builder[T any] struct {
	base        string
	description string
	arguments   []Argument
	children    []*Command[T]
	conditions  []Condition[T]
	action      Action[T]
	phantom     *Error
	invisible   bool

	root bool
	errs []error
}

// NewBuilder starts the declaration of a root command.
func NewBuilder[T any](base string) *Builder[T] {
	b := &Builder[T]{base: base, root: true}
	b.checkName(base)
	return b
}

func (b *Builder[T]) checkName(name string) {
	switch {
	case name == "":
		b.fail("command name is empty")
	case strings.HasPrefix(name, Marker):
		b.fail("command name %q starts with %q", name, Marker)
	}
}

func (b *Builder[T]) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf("%s: "+format, append([]any{b.path()}, args...)...))
}

func (b *Builder[T]) path() string {
	if b.base == "" {
		return "<unnamed>"
	}
	return b.base
}

func (b *Builder[T]) Description(text string) *Builder[T] {
	b.description = text
	return b
}

// Require adds a guard evaluated before any argument is consumed.
func (b *Builder[T]) Require(message string, check func(ctx *Context[T]) bool) *Builder[T] {
	return b.RequireCondition(Require(message, check))
}

func (b *Builder[T]) RequireCondition(cond Condition[T]) *Builder[T] {
	if cond.Check == nil {
		b.fail("condition %q has no check", cond.Message)
		return b
	}
	b.conditions = append(b.conditions, cond)
	return b
}

// Argument declares a required argument.
func (b *Builder[T]) Argument(name string) *Builder[T] {
	return b.addArgument(Argument{Name: name, Arity: Required})
}

func (b *Builder[T]) OptionalArgument(name string) *Builder[T] {
	return b.addArgument(Argument{Name: name, Arity: Optional})
}

// ArrayArgument declares an argument consuming every remaining token up to
// the next subcommand. It must be the last argument.
func (b *Builder[T]) ArrayArgument(name string) *Builder[T] {
	return b.addArgument(Argument{Name: name, Arity: Array})
}

func (b *Builder[T]) addArgument(arg Argument) *Builder[T] {
	if arg.Name == "" {
		b.fail("argument name is empty")
		return b
	}
	for _, a := range b.arguments {
		if a.Name == arg.Name {
			b.fail("duplicate argument %q", arg.Name)
			return b
		}
	}
	if n := len(b.arguments); n > 0 {
		last := b.arguments[n-1]
		switch {
		case last.Arity == Array:
			b.fail("argument %s follows array argument %s", arg, last)
			return b
		case last.Arity == Optional && arg.Arity == Required:
			b.fail("required argument %s follows optional argument %s", arg, last)
			return b
		}
	}
	b.arguments = append(b.arguments, arg)
	return b
}

// Subcommand declares a child command. The child inherits the phantom
// marker if it is already set on this builder.
func (b *Builder[T]) Subcommand(name string, declare func(sub *Builder[T])) *Builder[T] {
	sub := &Builder[T]{base: name, phantom: b.phantom}
	sub.checkName(name)
	if declare != nil {
		declare(sub)
	}

	child, err := sub.Build()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", b.path(), err))
		return b
	}
	if _, dup := b.child(name); dup {
		b.fail("duplicate subcommand %q", name)
		return b
	}
	b.children = append(b.children, child)
	return b
}

func (b *Builder[T]) child(name string) (*Command[T], bool) {
	for _, c := range b.children {
		if c.base == name {
			return c, true
		}
	}
	return nil, false
}

// Executes binds the action run when resolution ends at this command.
func (b *Builder[T]) Executes(action Action[T]) *Builder[T] {
	b.action = action
	return b
}

// Phantom marks the command as declared but not executable here, with
// DefaultPhantomMessage. Only roots can be marked.
func (b *Builder[T]) Phantom() *Builder[T] {
	return b.PhantomMessage(DefaultPhantomMessage)
}

func (b *Builder[T]) PhantomMessage(message string) *Builder[T] {
	if !b.root {
		b.fail("only root commands can be marked phantom")
		return b
	}
	b.phantom = newError(PhantomCommand, message)
	return b
}

// Invisible hides a root command from help and reports its failures as
// COMMAND_NOT_FOUND.
func (b *Builder[T]) Invisible() *Builder[T] {
	if !b.root {
		b.fail("only root commands can be invisible")
		return b
	}
	b.invisible = true
	return b
}

// Build validates the declaration and returns the immutable command.
func (b *Builder[T]) Build() (*Command[T], error) {
	errs := append([]error(nil), b.errs...)

	if b.phantom != nil {
		if b.action != nil {
			errs = append(errs, fmt.Errorf("%s: phantom command has an action", b.path()))
		}
		if len(b.conditions) > 0 {
			errs = append(errs, fmt.Errorf("%s: phantom command has conditions", b.path()))
		}
	} else if b.action == nil && len(b.children) == 0 {
		errs = append(errs, fmt.Errorf("%s: command has neither an action nor subcommands", b.path()))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Command[T]{
		base:        b.base,
		description: b.description,
		arguments:   append([]Argument(nil), b.arguments...),
		children:    append([]*Command[T](nil), b.children...),
		conditions:  append([]Condition[T](nil), b.conditions...),
		action:      b.action,
		phantom:     b.phantom,
		invisible:   b.invisible,
	}, nil
}
