package storage

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// ImageStore persists processed images. Save returns the path or key clients
// use to reference the image afterwards.
type ImageStore interface {
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// NewKey builds a unique object name: millisecond timestamp plus a random
// suffix, keeping the given extension.
func NewKey(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}
