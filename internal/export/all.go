package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/openresume/resume-builder/internal/rendering"
	"github.com/openresume/resume-builder/internal/types"
)

// RenderAll renders the record once per registered template, concurrently,
// and writes each result as <template>.html under dir. It returns the paths
// written, one per template.
func RenderAll(ctx context.Context, data *types.ResumeData, dir string) ([]string, error) {
	if data == nil {
		data = types.NewDefaultResume()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	templates := types.Templates()
	paths := make([]string, len(templates))

	g, _ := errgroup.WithContext(ctx)
	for i, info := range templates {
		g.Go(func() error {
			copied := *data
			copied.Template = info.ID
			html, err := rendering.Render(&copied)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, string(info.ID)+".html")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
