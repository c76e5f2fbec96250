package content

import (
	"context"
	"time"
)

// Request is one generation call.
type Request struct {
	Kind    Kind              `json:"kind"`
	Product ProductAttributes `json:"product"`
	Style   StyleConfig       `json:"style"`
}

// Generator wraps the pure generators behind a blocking, cancellable call.
// The zero value generates immediately. A Generator holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	// Latency is waited before generating, standing in for a remote backend.
	Latency time.Duration
}

// Generate waits for g.Latency and then runs the request. If ctx ends first
// it returns ctx.Err() and an empty result.
func (g Generator) Generate(ctx context.Context, req Request) (GeneratedContent, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedContent{}, err
	}
	if g.Latency > 0 {
		t := time.NewTimer(g.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return GeneratedContent{}, ctx.Err()
		case <-t.C:
		}
	}
	return Generate(req.Kind, req.Product, req.Style), nil
}
