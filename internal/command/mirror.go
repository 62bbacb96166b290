package command

// RegisterMirror registers a phantom copy of src on p under the same name:
// description, arguments and subcommands are copied so help lists the
// command, and every invocation fails with PhantomCommand carrying
// message.
func RegisterMirror[T, U any](p *Processor[T], src *Command[U], message string) error {
	return p.Register(src.Base(), func(b *Builder[T]) {
		b.PhantomMessage(message)
		mirror(b, src)
	})
}

func mirror[T, U any](b *Builder[T], src *Command[U]) {
	b.Description(src.Description())
	for _, arg := range src.Arguments() {
		b.addArgument(arg)
	}
	for _, child := range src.Children() {
		b.Subcommand(child.Base(), func(sub *Builder[T]) {
			mirror(sub, child)
		})
	}
}
