package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FigurePath string // hcl file or directory with figure definitions
	OutputPath string // file or directory to save artifacts to; "" means cwd

	Engine string // pdflatex, lualatex, or native
	Compat string // PGFPlots compat override applied to every figure
	Open   bool   // open each saved artifact with the default viewer
	Force  bool   // replace existing artifact files

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FigurePath == "" {
		return nil, errors.New("FigurePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
