package command

// Arity is how many tokens an argument consumes.
type Arity int

const (
	// Required consumes exactly one token.
	Required Arity = iota
	// Optional consumes one token when one is available.
	Optional
	// Array consumes every remaining token up to the next subcommand.
	Array
)

func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Argument is a declared positional parameter of a command.
type Argument struct {
	Name  string
	Arity Arity
}

// String renders the argument the way help shows it.
func (a Argument) String() string {
	switch a.Arity {
	case Optional:
		return "[" + a.Name + "]"
	case Array:
		return "[" + a.Name + "...]"
	default:
		return "<" + a.Name + ">"
	}
}

// Condition guards a command. When Check fails, resolution stops with
// Message as a CustomError.
type Condition[T any] struct {
	Message string
	Check   func(ctx *Context[T]) bool
}

// Require creates a Condition.
func Require[T any](message string, check func(ctx *Context[T]) bool) Condition[T] {
	return Condition[T]{Message: message, Check: check}
}
