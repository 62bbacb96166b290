package command

import "strings"

// Action is the function bound to an executable command.
type Action[T any] func(ctx *Context[T])

// Command is one node of a built command tree. It is immutable; create it
// with a Builder.
type Command[T any] struct {
	base        string
	description string
	arguments   []Argument
	children    []*Command[T]
	conditions  []Condition[T]
	action      Action[T]
	phantom     *Error
	invisible   bool
}

func (c *Command[T]) Base() string        { return c.base }
func (c *Command[T]) Description() string { return c.description }
func (c *Command[T]) IsInvisible() bool   { return c.invisible }
func (c *Command[T]) IsPhantom() bool     { return c.phantom != nil }
func (c *Command[T]) HasAction() bool     { return c.action != nil }

// Arguments returns a copy of the declared arguments.
func (c *Command[T]) Arguments() []Argument {
	return append([]Argument(nil), c.arguments...)
}

// Children returns a copy of the direct subcommands in declaration order.
func (c *Command[T]) Children() []*Command[T] {
	return append([]*Command[T](nil), c.children...)
}

// Child returns the direct subcommand named name.
func (c *Command[T]) Child(name string) (*Command[T], bool) {
	for _, child := range c.children {
		if child.base == name {
			return child, true
		}
	}
	return nil, false
}

// PhantomError returns the fixed error of a phantom command, nil otherwise.
func (c *Command[T]) PhantomError() *Error {
	if c.phantom == nil {
		return nil
	}
	e := *c.phantom
	return &e
}

// Signature renders the arguments the way help shows them, e.g.
// "<group> <user> [note...]".
func (c *Command[T]) Signature() string {
	parts := make([]string, len(c.arguments))
	for i, a := range c.arguments {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// resolve walks this node with ctx positioned at the token naming it.
func (c *Command[T]) resolve(ctx *Context[T]) *Error {
	tok, ok := ctx.current()
	if !ok || !tok.Is(c.base) {
		return ctx.errorAtCurrent(InvalidToken)
	}
	if c.phantom != nil {
		return c.PhantomError()
	}

	for _, cond := range c.conditions {
		if !cond.Check(ctx) {
			return newError(CustomError, cond.Message)
		}
	}

	limit, child := c.findChild(ctx)
	ctx.consume()

	if err := c.bind(ctx, limit); err != nil {
		return err
	}

	if child != nil {
		// Tokens between the bound arguments and the subcommand match
		// nothing this node declared.
		if ctx.position != limit {
			return ctx.errorAtCurrent(InvalidToken)
		}
		return child.resolve(ctx)
	}

	if c.action != nil {
		if ctx.position < len(ctx.tokens) {
			return ctx.errorAtCurrent(UnknownSubcommand)
		}
		c.action(ctx)
		return nil
	}

	if ctx.position < len(ctx.tokens) {
		return ctx.errorAtCurrent(InvalidSubcommand)
	}
	return ctx.errorAtCurrent(FurtherSubcommandsExpected)
}

// findChild returns the index of the first token after the current one
// that functionally names a child, and that child. Without a match the
// index is the token count.
func (c *Command[T]) findChild(ctx *Context[T]) (int, *Command[T]) {
	if len(c.children) == 0 {
		return len(ctx.tokens), nil
	}
	for i := ctx.position + 1; i < len(ctx.tokens); i++ {
		for _, child := range c.children {
			if ctx.tokens[i].IsFunctional(child.base) {
				return i, child
			}
		}
	}
	return len(ctx.tokens), nil
}

// bind consumes the declared arguments over [position, limit).
func (c *Command[T]) bind(ctx *Context[T], limit int) *Error {
	for _, arg := range c.arguments {
		switch arg.Arity {
		case Required:
			if ctx.position >= limit {
				return c.missing(ctx, arg)
			}
			ctx.bindToken(arg.Name, ctx.consume())

		case Optional:
			if ctx.position >= limit {
				return nil
			}
			ctx.bindToken(arg.Name, ctx.consume())

		case Array:
			toks := append([]Token{}, ctx.tokens[ctx.position:limit]...)
			ctx.bindArray(arg.Name, toks)
			ctx.position = limit
		}
	}
	return nil
}

func (c *Command[T]) missing(ctx *Context[T], arg Argument) *Error {
	start := 0
	if ctx.position > 0 {
		start = ctx.tokens[ctx.position-1].End
	}
	end := len(ctx.line) + outOfBoundsWidth
	if cur, ok := ctx.current(); ok {
		end = cur.End
	}
	return newSpanError(MissingRequiredArgument, ctx.line, start, end, arg.Name)
}
