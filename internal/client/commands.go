package client

import (
	"context"
	"fmt"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/server"
)

type Ctx = command.Context[*Client]

func registerInput(p *command.Processor[*Client]) {
	p.MustRegister("connect", func(b *command.Builder[*Client]) {
		b.Description(`Connect to a server. Quote an address with a port: /connect "host:7777".`).
			OptionalArgument("address").
			Executes(func(ctx *Ctx) {
				c := ctx.Payload
				if c.Connected() {
					ctx.Out.Println("Already connected. Use /disconnect first.")
					return
				}
				dialCtx, cancel := context.WithTimeout(context.Background(), dialTimeout)
				defer cancel()
				if err := c.Connect(dialCtx, ctx.String("address")); err != nil {
					c.log.Warn("%v", err)
					ctx.Out.Printf("Could not %v.\n", err)
				}
			})
	})
	p.MustRegister("disconnect", func(b *command.Builder[*Client]) {
		b.Description("Close the connection to the server.").
			Require("You are not connected.", func(ctx *Ctx) bool { return ctx.Payload.Connected() }).
			Executes(func(ctx *Ctx) { ctx.Payload.Disconnect() })
	})
	p.MustRegister("clear", func(b *command.Builder[*Client]) {
		b.Description("Clear the screen.").
			Executes(func(ctx *Ctx) { ctx.Payload.emit(Event{Kind: EventClear}) })
	})
	p.MustRegister("quit", func(b *command.Builder[*Client]) {
		b.Description("Disconnect and exit.").
			Executes(func(ctx *Ctx) {
				ctx.Payload.Disconnect()
				ctx.Payload.emit(Event{Kind: EventQuit})
			})
	})

	registerServerMirrors(p)
}

// registerServerMirrors declares every visible server command as phantom,
// so help lists it and typing it forwards the line.
func registerServerMirrors(p *command.Processor[*Client]) {
	sp := command.NewProcessor[*server.Session]()
	server.RegisterCommands(sp)
	for _, root := range sp.Roots() {
		if root.IsInvisible() || root.Base() == command.HelpCommand {
			continue
		}
		if err := command.RegisterMirror(p, root, msgNotConnected); err != nil {
			panic(err)
		}
	}
}

func registerControl(p *command.Processor[*Client]) {
	p.MustRegister("request", func(b *command.Builder[*Client]) {
		b.Invisible().
			Subcommand("type", func(b *command.Builder[*Client]) {
				b.Executes(func(ctx *Ctx) {
					c := ctx.Payload
					c.forward(command.Line("response", "type", c.clientType))
				})
			})
	})
	p.MustRegister("ask", func(b *command.Builder[*Client]) {
		b.Invisible().
			Subcommand("deletion", func(b *command.Builder[*Client]) {
				b.Argument("groupname").
					Argument("name").
					Executes(func(ctx *Ctx) {
						ask(ctx, "deletion", "Do you really want to delete %s? [Y/n]")
					})
			}).
			Subcommand("exit_group", func(b *command.Builder[*Client]) {
				b.Argument("groupname").
					Argument("name").
					Executes(func(ctx *Ctx) {
						ask(ctx, "exit_group", "Do you really want to leave %s? [Y/n]")
					})
			})
	})
}

// ask stores the /confirm reply for what and prompts the user.
func ask(ctx *Ctx, what, prompt string) {
	c := ctx.Payload
	c.setPending(&confirmation{reply: command.Line("confirm", what, ctx.String("groupname"))})
	c.emit(Event{Kind: EventPrompt, Text: fmt.Sprintf(prompt, ctx.String("name"))})
}
