package actions

import (
	"context"
	"errors"

	"github.com/fsbteam/chat/internal/client"
	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/usage"
)

// Connect opens the console client against a server.
func Connect(args []string, flags *dispatchers.ParsedFlags) error {
	return connect(context.Background(), args, flags, defaultDeps())
}

func connect(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps actionDependencies, opts ...client.Option) error {
	values, _ := deps.GetAll()

	address := flags.String("--addr", values["server_addr"])
	if len(args) > 0 {
		address = args[0]
	}

	opts = append([]client.Option{
		client.WithAddress(address),
		client.WithClientType(values["client_type"]),
		client.WithLogger(deps.Logger()),
	}, opts...)
	c := client.New(opts...)

	if err := c.Connect(ctx, address); err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			err = cause
		}
		return usage.NotConnected(address, err)
	}
	defer c.Disconnect()

	return deps.RunChat(c)
}
