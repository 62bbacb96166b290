package config

import (
	"io"
	"os"

	"github.com/fsbteam/chat/internal/config"
)

// Deps is what the config commands touch.
type Deps struct {
	Out io.Writer
	// Edit runs a read-modify-write of ~/.fsbrc under its lock.
	Edit   func(func([]string) ([]string, error)) error
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
}

func DefaultDeps() Deps {
	return Deps{
		Out:    os.Stdout,
		Edit:   config.Edit,
		Get:    config.Get,
		GetAll: config.GetAll,
	}
}
