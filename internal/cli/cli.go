package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/texfig/internal/app"
	"github.com/vk/texfig/internal/engine"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("texfig", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
TexFig - A declarative PGFPlots figure compiler.

Usage:
  texfig [options] [FIGURE_PATH]

Arguments:
  FIGURE_PATH
    Path to a single .hcl figure file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	figureFlag := flagSet.String("figure", "", "Path to the figure file or directory.")
	fFlag := flagSet.String("f", "", "Path to the figure file or directory (shorthand).")
	outputFlag := flagSet.String("output", "", "File or directory to save artifacts to. Defaults to the current directory.")
	oFlag := flagSet.String("o", "", "File or directory to save artifacts to (shorthand).")
	engineFlag := flagSet.String("engine", engine.Default().String(), "LaTeX engine. Options: 'pdflatex', 'lualatex', or 'native'.")
	compatFlag := flagSet.String("compat", "", "PGFPlots compat version applied to every figure, e.g. '1.18'.")
	openFlag := flagSet.Bool("open", false, "Open each saved artifact with the default viewer.")
	forceFlag := flagSet.Bool("force", false, "Replace artifact files that already exist.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *figureFlag != "" {
		path = *figureFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = *oFlag
	}

	engineName := strings.ToLower(*engineFlag)
	if _, err := engine.Parse(engineName); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		FigurePath: path,
		OutputPath: outputPath,
		Engine:     engineName,
		Compat:     *compatFlag,
		Open:       *openFlag,
		Force:      *forceFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
