package app

import (
	"github.com/fsbteam/chat/internal/config"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/paths"
	"github.com/fsbteam/chat/internal/ui"
	"github.com/fsbteam/chat/internal/ui/style"
)

// Options configures New. The command line overrides StyleEnabled and
// PagerDisabled after DefaultOptions has filled the rest from ~/.fsbrc.
type Options struct {
	PagerDisabled bool
	StyleEnabled  bool
	StyleConfig   map[string]string

	LogEnabled bool
	LogLevel   string
	LogPath    string
}

func DefaultOptions() Options {
	cfg, _ := config.GetAll()
	return optionsFrom(cfg)
}

func optionsFrom(cfg map[string]string) Options {
	return Options{
		StyleEnabled: true,
		StyleConfig:  cfg,
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     cfg["log_level"],
		LogPath:      paths.LogFilePath(),
	}
}

// New wires an Application. A file logger, when enabled, is also
// installed as the package logger so the server and client share it.
func New(opts Options) *domain.Application {
	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var output []ui.WriterOption
	if opts.PagerDisabled {
		output = append(output, ui.WithPagerDisabled())
	}

	return &domain.Application{
		Config: config.NewProvider(),
		Logger: openLogger(opts),
		Output: ui.NewWriter(output...),
		Styler: style.NewStyler(),
	}
}

// openLogger falls back to discarding when the log file can't be opened;
// a broken log must never stop the command itself.
func openLogger(opts Options) domain.Logger {
	if !opts.LogEnabled {
		return log.NopLogger{}
	}
	l, err := log.New(opts.LogPath, log.ParseLevel(opts.LogLevel))
	if err != nil {
		return log.NopLogger{}
	}
	log.SetDefault(l)
	return l
}

// NewForTesting returns an Application with no log, no pager and no color.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NewPlainStyler(),
	}
}

func Close(app *domain.Application) error {
	if app.Logger == nil {
		return nil
	}
	return app.Logger.Close()
}
