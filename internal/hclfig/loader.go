package hclfig

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/texfig/internal/ctxlog"
	"github.com/vk/texfig/internal/document"
	"github.com/vk/texfig/internal/fsutil"
)

// Figure pairs a figure's label with its translated document tree.
type Figure struct {
	Name     string
	Document *document.Document
}

// Loader parses figure definition files and translates them into document
// trees.
type Loader struct{}

// NewLoader creates a figure definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all figure files reachable from path. A file path is parsed
// directly; a directory is searched recursively for .hcl files. Figures are
// returned in file order, then in their order within each file.
func (l *Loader) Load(ctx context.Context, path string) ([]Figure, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findFigureFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered figure files.", "count", len(files))

	parser := hclparse.NewParser()
	var figures []Figure
	seen := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse figure file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode figure file %s: %w", file, diags)
		}

		for _, block := range root.Figures {
			if prev, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("figure %q in %s already defined in %s", block.Name, file, prev)
			}
			seen[block.Name] = file

			doc, err := translateFigure(block)
			if err != nil {
				return nil, fmt.Errorf("figure %q in %s: %w", block.Name, file, err)
			}
			figures = append(figures, Figure{Name: block.Name, Document: doc})
		}
	}

	if len(figures) == 0 {
		return nil, fmt.Errorf("no figure blocks found under %s", path)
	}

	logger.Debug("Figure loading complete.", "figures", len(figures))
	return figures, nil
}

func (l *Loader) findFigureFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("error searching %s for figure files: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found under %s", path)
	}
	return files, nil
}
