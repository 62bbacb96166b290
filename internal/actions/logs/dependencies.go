package logs

import (
	"io"
	"os"
	"time"

	"github.com/fsbteam/chat/internal/paths"
)

// defaultPollInterval is how often tail checks the file once it has read
// to the end.
const defaultPollInterval = 500 * time.Millisecond

// Deps are the file and output operations behind the logs commands.
type Deps struct {
	LogFilePath func() string
	Out         io.Writer

	ReadFile func(string) ([]byte, error)
	Truncate func(string) error
	// Open opens the log for reading, creating it if needed.
	Open func(string) (*os.File, error)

	// PollInterval falls back to defaultPollInterval when zero.
	PollInterval time.Duration
}

func DefaultDeps() Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		Out:         os.Stdout,
		ReadFile:    os.ReadFile,
		Truncate: func(path string) error {
			return os.WriteFile(path, nil, 0600)
		},
		Open: func(path string) (*os.File, error) {
			return os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0600)
		},
		PollInterval: defaultPollInterval,
	}
}

func (d Deps) pollInterval() time.Duration {
	if d.PollInterval <= 0 {
		return defaultPollInterval
	}
	return d.PollInterval
}
