package content

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorImmediate(t *testing.T) {
	req := Request{Kind: KindTitle, Product: acmePhone(), Style: DefaultStyle()}
	got, err := Generator{}.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, Generate(req.Kind, req.Product, req.Style), got)
}

func TestGeneratorWaitsForLatency(t *testing.T) {
	g := Generator{Latency: 20 * time.Millisecond}
	start := time.Now()
	got, err := g.Generate(context.Background(), Request{Kind: KindMetaTags, Product: acmePhone(), Style: DefaultStyle()})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "electronics/phone", got.SEOURL)
}

func TestGeneratorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := Generator{}.Generate(ctx, Request{Kind: KindTitle, Product: acmePhone()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, GeneratedContent{}, got)
}

func TestGeneratorDeadlineDuringLatency(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	got, err := Generator{Latency: time.Second}.Generate(ctx, Request{Kind: KindProductCard, Product: acmePhone()})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, GeneratedContent{}, got)
}

func TestGeneratorConcurrentCalls(t *testing.T) {
	g := Generator{}
	req := Request{Kind: KindProductCard, Product: acmePhone(), Style: DefaultStyle()}
	want := Generate(req.Kind, req.Product, req.Style)

	var wg sync.WaitGroup
	results := make([]GeneratedContent, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = g.Generate(context.Background(), req)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
