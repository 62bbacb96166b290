package actions

import (
	"fmt"

	"github.com/fsbteam/chat/internal/app"
	"github.com/fsbteam/chat/internal/client"
	"github.com/fsbteam/chat/internal/config"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/store"
	"github.com/fsbteam/chat/internal/ui/chat"
)

type actionDependencies struct {
	Printf    func(format string, a ...any) (n int, err error)
	Version   func() string
	GetAll    func() (map[string]string, error)
	Logger    func() *log.Logger
	OpenStore func(path string) (domain.ChatStore, error)
	RunChat   func(c *client.Client) error
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:    fmt.Printf,
		Version:   func() string { return app.Version },
		GetAll:    config.GetAll,
		Logger:    log.GetLogger,
		OpenStore: openStore,
		RunChat:   chat.Run,
	}
}

func openStore(path string) (domain.ChatStore, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
