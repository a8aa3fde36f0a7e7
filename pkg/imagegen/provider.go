package imagegen

import (
	"context"
	"errors"
)

var ErrNoImage = errors.New("image service returned no image")

// ImageProvider turns a text prompt into a publicly reachable image URL.
type ImageProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
