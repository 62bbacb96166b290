package cli

import (
	"github.com/fsbteam/chat/internal/actions"
	shellcompletions "github.com/fsbteam/chat/internal/actions/completions"
	"github.com/fsbteam/chat/internal/actions/config"
	"github.com/fsbteam/chat/internal/actions/logs"
	"github.com/fsbteam/chat/internal/actions/theme"
	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/completions"
	"github.com/fsbteam/chat/internal/dispatchers"
)

type builder = command.Builder[*dispatchers.Invocation]

// BuildProcessor declares every fsb command.
func BuildProcessor() *command.Processor[*dispatchers.Invocation] {
	p := command.NewProcessor[*dispatchers.Invocation]()

	p.MustRegister("serve", func(b *builder) {
		b.Description("Run the chat server").
			Executes(dispatchers.Exec(actions.Serve))
	})

	p.MustRegister("connect", func(b *builder) {
		b.Description("Open the chat client").
			OptionalArgument("address").
			Executes(dispatchers.Exec(actions.Connect, "address"))
	})

	p.MustRegister("config", func(b *builder) {
		b.Description("Manage configuration").
			Subcommand("get", func(sub *builder) {
				sub.Description("Print a config value").
					Argument("key").
					Executes(dispatchers.Exec(config.Get, "key"))
			}).
			Subcommand("set", func(sub *builder) {
				sub.Description("Set a config value").
					Argument("key").
					Argument("value").
					Executes(dispatchers.Exec(config.Set, "key", "value"))
			}).
			Subcommand("unset", func(sub *builder) {
				sub.Description("Remove a config value, or all with --all").
					OptionalArgument("key").
					Executes(dispatchers.Exec(config.Unset, "key"))
			}).
			Subcommand("list", func(sub *builder) {
				sub.Description("List all config values").
					Executes(dispatchers.Exec(config.List))
			})
	})

	p.MustRegister("theme", func(b *builder) {
		b.Description("Manage color themes").
			Subcommand("list", func(sub *builder) {
				sub.Description("List available themes").
					Executes(dispatchers.Exec(theme.List))
			}).
			Subcommand("set", func(sub *builder) {
				sub.Description("Set the color theme").
					Argument("name").
					Executes(dispatchers.Exec(theme.Set, "name"))
			}).
			Subcommand("pick", func(sub *builder) {
				sub.Description("Pick a theme interactively").
					Executes(dispatchers.Exec(theme.Pick))
			})
	})

	p.MustRegister("logs", func(b *builder) {
		b.Description("View the fsb log").
			Executes(dispatchers.Exec(logs.View)).
			Subcommand("tail", func(sub *builder) {
				sub.Description("Follow the log as it grows").
					Executes(dispatchers.Exec(logs.Tail))
			}).
			Subcommand("clear", func(sub *builder) {
				sub.Description("Empty the log file").
					Executes(dispatchers.Exec(logs.Clear))
			})
	})

	p.MustRegister("completions", func(b *builder) {
		b.Description("Set up shell completions").
			OptionalArgument("shell").
			Executes(dispatchers.Exec(shellcompletions.Completions, "shell"))
	})

	p.MustRegister("version", func(b *builder) {
		b.Description("Show fsb version").
			Executes(dispatchers.Exec(actions.ShowVersion))
	})

	completions.RegisterCommands(completions.ExtractCommands("fsb", p, commandFlags))

	return p
}
