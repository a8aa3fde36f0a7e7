package comic

import (
	"context"

	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/pkg/imagegen"

	"golang.org/x/sync/errgroup"
)

const moduleName = "ComicIllustrator"

// Illustrator requests one image per panel concurrently.
type Illustrator struct {
	images imagegen.ImageProvider
	logger logger.ILogger
}

func NewIllustrator(images imagegen.ImageProvider, log logger.ILogger) *Illustrator {
	return &Illustrator{
		images: images,
		logger: log,
	}
}

// Illustrate returns a copy of panels with ImageUrl filled in, in the same order.
// A failed image leaves ImageUrl nil and never fails the batch. It waits for every call.
func (il *Illustrator) Illustrate(ctx context.Context, theme string, panels []Panel) []Panel {
	out := make([]Panel, len(panels))
	copy(out, panels)

	var g errgroup.Group
	for i := range out {
		i := i
		g.Go(func() error {
			prompt := ImagePrompt(theme, out[i].SceneDescription)
			url, err := il.images.Generate(ctx, prompt)
			if err != nil {
				il.logger.Warn(moduleName, "Image generation failed for panel", map[string]interface{}{
					"panel": i,
					"error": err.Error(),
				})
				out[i].ImageUrl = nil
				return nil
			}
			out[i].ImageUrl = &url
			return nil
		})
	}
	_ = g.Wait()

	return out
}
