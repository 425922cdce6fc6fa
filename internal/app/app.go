package app

import (
	"io"
	"log/slog"

	"github.com/vk/texfig/internal/hclfig"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *hclfig.Loader
	config *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func New(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: hclfig.NewLoader(),
		config: config,
	}
}
