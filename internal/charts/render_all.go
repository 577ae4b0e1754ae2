package charts

import (
	"context"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/sync/errgroup"
)

// Job is one chart to write.
type Job struct {
	Name   string
	Render func(io.Writer) error
}

// RenderAll writes every job to dir concurrently and returns the paths in
// job order. The first failure cancels the remaining jobs.
func RenderAll(ctx context.Context, dir string, jobs []Job) ([]string, error) {
	// Load the shared font once before the workers race for it.
	if _, err := chart.GetDefaultFont(); err != nil {
		return nil, fmt.Errorf("loading chart font: %w", err)
	}

	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := WriteFile(dir, job.Name, job.Render)
			if err != nil {
				return fmt.Errorf("chart %s: %w", job.Name, err)
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
