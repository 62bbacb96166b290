package command

import "strings"

func (p *Processor[T]) declareHelp(b *Builder[T]) {
	b.Description("Show available commands, or the subcommands of one.").
		ArrayArgument("path").
		Executes(func(ctx *Context[T]) {
			p.writeHelp(ctx.Out, ctx.Strings("path"))
		})
}

func (p *Processor[T]) writeHelp(out *Output, path []string) {
	if len(path) == 0 {
		for _, root := range p.roots {
			if root.invisible {
				continue
			}
			out.Println(helpLine([]string{root.base}, root))
		}
		return
	}

	var (
		node *Command[T]
		ok   bool
	)
	for i, seg := range path {
		if i == 0 {
			node, ok = p.byName[seg]
			ok = ok && !node.invisible
		} else {
			node, ok = node.Child(seg)
		}
		if !ok {
			out.Printf("Unknown command %s.\n", seg)
			return
		}
	}

	if node.action != nil || node.phantom != nil {
		out.Println(helpLine(path, node))
	}
	for _, child := range node.children {
		out.Println(helpLine(append(path[:len(path):len(path)], child.base), child))
	}
}

// helpLine renders "/path <args> - description".
func helpLine[T any](path []string, cmd *Command[T]) string {
	var b strings.Builder
	b.WriteString(Marker)
	b.WriteString(strings.Join(path, " "))
	if sig := cmd.Signature(); sig != "" {
		b.WriteString(" ")
		b.WriteString(sig)
	}
	if cmd.description != "" {
		b.WriteString(" - ")
		b.WriteString(cmd.description)
	}
	return b.String()
}
