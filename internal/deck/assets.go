package deck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"swipeshow/internal/domain"
)

// maxConcurrentReads bounds the number of slide files read at once
const maxConcurrentReads = 4

// LoadAssets returns a copy of d with every deferred slide body read from
// disk. A slide whose file cannot be read keeps the failure in its Error
// field; the failures are also returned joined together. Only context
// cancellation aborts the whole load.
func LoadAssets(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	out := &domain.Deck{Title: d.Title, Path: d.Path, Slides: make([]domain.Slide, len(d.Slides))}
	copy(out.Slides, d.Slides)

	baseDir := "."
	if d.Path != "" {
		baseDir = filepath.Dir(d.Path)
	}

	var (
		mu       sync.Mutex
		failures []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i := range out.Slides {
		if !out.Slides[i].Deferred() {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s := &out.Slides[i]
			path := s.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				err = fmt.Errorf("failed to load slide %d: %w", i+1, err)
				s.Error = err.Error()
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return nil
			}
			s.Body = string(data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, errors.Join(failures...)
}

// Pending counts the slides whose bodies LoadAssets would read
func Pending(d *domain.Deck) int {
	n := 0
	for _, s := range d.Slides {
		if s.Deferred() {
			n++
		}
	}
	return n
}
