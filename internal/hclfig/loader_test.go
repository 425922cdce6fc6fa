package hclfig

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFigureFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMinimalFigure(t *testing.T) {
	path := writeFigureFile(t, t.TempDir(), "empty.hcl", `
figure "empty" {
  picture {
    axis {}
  }
}
`)

	figures, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, figures, 1)
	assert.Equal(t, "empty", figures[0].Name)

	expected := `\documentclass{standalone}
\usepackage{pgfplots}
\pgfplotsset{compat=default}

\begin{document}
\begin{tikzpicture}
\begin{axis}
\end{axis}
\end{tikzpicture}
\end{document}`
	assert.Equal(t, expected, figures[0].Document.Render())
}

func TestLoadFullFigure(t *testing.T) {
	path := writeFigureFile(t, t.TempDir(), "sweep.hcl", `
figure "voltage-sweep" {
  compat = "1.18"

  package "siunitx" {
    options = ["binary-units"]
  }

  picture {
    axis {
      title   = "Voltage sweep"
      x_label = "Time (s)"
      y_label = "Voltage (V)"
      x_min   = 0
      y_mode  = "log"
      grid    = "major"
      x_ticks = [0, 0.5, 1]

      plot {
        type    = "smooth"
        tension = 0.7
        y_error = "absolute"
        coordinates = [
          [0, 1.5, 0, 0.1],
          [0.5, 2.25, 0, 0.1],
          [1, 3.375, 0, 0.1],
        ]
      }
    }
  }
}
`)

	figures, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, figures, 1)

	rendered := figures[0].Document.Render()
	assert.Contains(t, rendered, "\\pgfplotsset{compat=1.18}")
	assert.Contains(t, rendered, "\\usepackage{siunitx}[binary-units]")
	assert.Contains(t, rendered, "\ttitle={Voltage sweep},")
	assert.Contains(t, rendered, "\txlabel={Time (s)},")
	assert.Contains(t, rendered, "\tylabel={Voltage (V)},")
	assert.Contains(t, rendered, "\txmin={0},")
	assert.Contains(t, rendered, "\tymode=log,")
	assert.Contains(t, rendered, "\tgrid=major,")
	assert.Contains(t, rendered, "\txtick={0, 0.5, 1},")
	assert.Contains(t, rendered, "\t\tsmooth, tension=0.7,")
	assert.Contains(t, rendered, "\t\terror bars/y explicit,")
	assert.Contains(t, rendered, "\t\t(0.5,2.25)\t+- (0,0.1)")
}

func TestLoadPreservesChildOrder(t *testing.T) {
	path := writeFigureFile(t, t.TempDir(), "order.hcl", `
figure "order" {
  picture {
    axis {
      draw {
        command = "(0,0) -- (1,1)"
      }
      plot {
        coordinates = [[0, 0]]
      }
      draw {
        command = "(1,1) circle [radius=2pt]"
      }
    }
  }
}
`)

	figures, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	rendered := figures[0].Document.Render()
	first := strings.Index(rendered, "\\draw (0,0) -- (1,1);")
	second := strings.Index(rendered, "\\addplot[")
	third := strings.Index(rendered, "\\draw (1,1) circle [radius=2pt];")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	require.GreaterOrEqual(t, third, 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestLoadHistogramImportsStatistics(t *testing.T) {
	path := writeFigureFile(t, t.TempDir(), "hist.hcl", `
figure "latency" {
  picture {
    axis {
      histogram {
        samples = [1, 2, 2, 3, 3, 3]
        bins    = 3
        density = true
      }
    }
  }
}
`)

	figures, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	rendered := figures[0].Document.Render()
	assert.Contains(t, rendered, "\\usepgfplotslibrary{statistics}")
	assert.Contains(t, rendered, "bins=3,")
	assert.Contains(t, rendered, "density=true,")
	// The import line appears in the preamble exactly once.
	assert.Equal(t, 1, strings.Count(rendered, "\\usepgfplotslibrary{statistics}"))
}

func TestLoadDirectoryCollectsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFigureFile(t, dir, "b.hcl", `
figure "second" {
  picture {
    axis {}
  }
}
`)
	writeFigureFile(t, dir, "a.hcl", `
figure "first" {
  picture {
    axis {}
  }
}
`)

	figures, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, figures, 2)
	// File order is lexical, not creation order.
	assert.Equal(t, "first", figures[0].Name)
	assert.Equal(t, "second", figures[1].Name)
}

func TestLoadDuplicateFigureName(t *testing.T) {
	dir := t.TempDir()
	body := `
figure "dup" {
  picture {
    axis {}
  }
}
`
	writeFigureFile(t, dir, "a.hcl", body)
	writeFigureFile(t, dir, "b.hcl", body)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `figure "dup"`)
	assert.Contains(t, err.Error(), "already defined")
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name: "unknown compat",
			source: `
figure "f" {
  compat = "2.0"
  picture {
    axis {}
  }
}
`,
			wantErr: "2.0",
		},
		{
			name: "unknown plot type",
			source: `
figure "f" {
  picture {
    axis {
      plot {
        type        = "zigzag"
        coordinates = [[0, 0]]
      }
    }
  }
}
`,
			wantErr: "unknown plot type",
		},
		{
			name: "bad coordinate arity",
			source: `
figure "f" {
  picture {
    axis {
      plot {
        coordinates = [[0, 0, 1]]
      }
    }
  }
}
`,
			wantErr: "components",
		},
		{
			name: "bar type without geometry",
			source: `
figure "f" {
  picture {
    axis {
      plot {
        type        = "ybar"
        coordinates = [[0, 0]]
      }
    }
  }
}
`,
			wantErr: "bar_width",
		},
		{
			name: "no pictures",
			source: `
figure "f" {
}
`,
			wantErr: "no picture blocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFigureFile(t, t.TempDir(), "bad.hcl", tt.source)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
