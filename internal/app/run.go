package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/texfig/internal/ctxlog"
	"github.com/vk/texfig/internal/document"
	"github.com/vk/texfig/internal/engine"
	"github.com/vk/texfig/internal/hclfig"
	"github.com/vk/texfig/internal/workspace"
)

// Run executes the full pipeline: load figure definitions, compile each one
// in its own workspace, and persist the artifacts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	eng := engine.Default()
	if a.config.Engine != "" {
		var err error
		eng, err = engine.Parse(a.config.Engine)
		if err != nil {
			return err
		}
	}

	var compat *document.Compat
	if a.config.Compat != "" {
		c, err := document.NewCompat(a.config.Compat)
		if err != nil {
			return err
		}
		compat = &c
	}

	figures, err := a.loader.Load(ctx, a.config.FigurePath)
	if err != nil {
		return fmt.Errorf("failed to load figure definitions: %w", err)
	}
	if err := a.checkOutputPath(len(figures)); err != nil {
		return err
	}
	a.logger.Info("🚀 Starting compilation.", "figures", len(figures), "engine", eng.String())

	for _, fig := range figures {
		if err := a.compileFigure(ctx, eng, fig, compat); err != nil {
			return fmt.Errorf("figure %q: %w", fig.Name, err)
		}
	}

	a.logger.Info("🏁 Compilation finished.", "figures", len(figures))
	return nil
}

// checkOutputPath rejects an output path naming a single file when more than
// one figure is about to be saved, since each save would replace the last.
func (a *App) checkOutputPath(figureCount int) error {
	if figureCount < 2 || a.config.OutputPath == "" {
		return nil
	}
	if a.config.OutputPath[len(a.config.OutputPath)-1] == os.PathSeparator {
		return nil
	}
	if info, err := os.Stat(a.config.OutputPath); err == nil && info.IsDir() {
		return nil
	}
	return fmt.Errorf("output path %s must be a directory when saving %d figures", a.config.OutputPath, figureCount)
}

// compileFigure runs one figure through workspace compilation and artifact
// persistence. The workspace is removed on every exit path.
func (a *App) compileFigure(ctx context.Context, eng engine.Engine, fig hclfig.Figure, compat *document.Compat) error {
	if compat != nil {
		fig.Document.SetCompat(*compat)
	}

	ws, err := workspace.NewNamed(fig.Name)
	if err != nil {
		return err
	}
	defer ws.Close()

	a.logger.Debug("Workspace allocated.", "figure", fig.Name, "dir", ws.Dir())
	if err := ws.Compile(ctx, eng, fig.Document.Render()); err != nil {
		return err
	}

	dest := a.config.OutputPath
	if dest == "" {
		dest = "."
	}

	// Save replaces whatever sits under a directory destination, so the
	// skip-unless-force policy has to look before calling it.
	if !a.config.Force {
		if info, err := os.Stat(dest); err == nil && info.IsDir() {
			existing := filepath.Join(dest, filepath.Base(ws.ArtifactPath()))
			if _, err := os.Stat(existing); err == nil {
				a.logger.Warn("Artifact already exists, not replacing it. Use --force to overwrite.", "figure", fig.Name, "path", existing)
				return nil
			}
		}
	}

	overwrite := workspace.NeverOverwrite
	if a.config.Force {
		overwrite = workspace.ForceOverwrite
	}

	path, written, err := ws.Save(dest, overwrite)
	if err != nil {
		return err
	}
	if !written {
		a.logger.Warn("Artifact already exists, not replacing it. Use --force to overwrite.", "figure", fig.Name, "path", path)
		return nil
	}
	a.logger.Info("Artifact saved.", "figure", fig.Name, "path", path)

	if a.config.Open {
		if err := workspace.OpenArtifact(path); err != nil {
			return err
		}
	}
	return nil
}
