package searchtool_test

import (
	"context"
	"errors"
	"testing"
	"time"

	// Packages
	"github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/cache"
	"github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// FIXTURES

// countingFetcher returns `count` fabricated image results and records how
// often and with which count it was invoked.
type countingFetcher struct {
	calls     int
	lastCount int
	results   []searchtool.ImageResult
	err       error
}

func (f *countingFetcher) fetch(ctx context.Context, query string, count int) ([]searchtool.ImageResult, error) {
	f.calls++
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func images(n int) []searchtool.ImageResult {
	result := make([]searchtool.ImageResult, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, searchtool.ImageResult{
			ImageURL: "https://example.com/image.jpg",
			Title:    "image",
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestCacheHitBypassesFetcher(t *testing.T) {
	assert := assert.New(t)
	store := cache.NewStore()

	fetcher := &countingFetcher{results: images(3)}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithStore(store, time.Minute),
	)
	assert.NoError(err)

	// First call fetches
	results, cached, err := core.Search(context.Background(), "cats", 3)
	assert.NoError(err)
	assert.False(cached)
	assert.Len(results, 3)
	assert.Equal(1, fetcher.calls)

	// Second identical call is served from the cache
	results, cached, err = core.Search(context.Background(), "cats", 3)
	assert.NoError(err)
	assert.True(cached)
	assert.Len(results, 3)
	assert.Equal(1, fetcher.calls)

	// Normalized query variants map to the same entry
	_, cached, err = core.Search(context.Background(), " CATS ", 3)
	assert.NoError(err)
	assert.True(cached)
	assert.Equal(1, fetcher.calls)

	// A different count is a different entry
	_, cached, err = core.Search(context.Background(), "cats", 2)
	assert.NoError(err)
	assert.False(cached)
	assert.Equal(2, fetcher.calls)
}

func TestEmptyResultsNeverCached(t *testing.T) {
	assert := assert.New(t)
	store := cache.NewStore()

	fetcher := &countingFetcher{}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithStore(store, time.Minute),
	)
	assert.NoError(err)

	results, cached, err := core.Search(context.Background(), "nothing", 3)
	assert.NoError(err)
	assert.False(cached)
	assert.Empty(results)
	assert.Equal(0, store.Len())

	// A subsequent identical call retries the upstream
	_, _, err = core.Search(context.Background(), "nothing", 3)
	assert.NoError(err)
	assert.Equal(2, fetcher.calls)
}

func TestErrorsNeverCached(t *testing.T) {
	assert := assert.New(t)
	store := cache.NewStore()

	fetcher := &countingFetcher{err: errors.New("upstream down")}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithStore(store, time.Minute),
	)
	assert.NoError(err)

	_, _, err = core.Search(context.Background(), "cats", 3)
	assert.Error(err)
	assert.Equal(0, store.Len())

	_, _, err = core.Search(context.Background(), "cats", 3)
	assert.Error(err)
	assert.Equal(2, fetcher.calls)
}

func TestTTLExpiryRefetches(t *testing.T) {
	assert := assert.New(t)
	store := cache.NewStore()

	fetcher := &countingFetcher{results: images(2)}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithStore(store, 50*time.Millisecond),
	)
	assert.NoError(err)

	_, _, err = core.Search(context.Background(), "cats", 2)
	assert.NoError(err)

	time.Sleep(80 * time.Millisecond)

	_, cached, err := core.Search(context.Background(), "cats", 2)
	assert.NoError(err)
	assert.False(cached)
	assert.Equal(2, fetcher.calls)
}

func TestWithoutStoreAlwaysFetches(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{results: images(1)}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch)
	assert.NoError(err)

	for i := 0; i < 3; i++ {
		_, cached, err := core.Search(context.Background(), "cats", 1)
		assert.NoError(err)
		assert.False(cached)
	}
	assert.Equal(3, fetcher.calls)
}

func TestResolveCount(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{results: images(5)}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithMaxResults(5),
	)
	assert.NoError(err)

	explicit := func(n int) *int { return &n }

	// Explicit count above the configured maximum is capped to it
	assert.Equal(5, core.ResolveCount(explicit(50)))

	// Explicit count below the maximum is honoured
	assert.Equal(2, core.ResolveCount(explicit(2)))

	// Absent count falls back to the configured value
	assert.Equal(5, core.ResolveCount(nil))

	// Count never drops below one
	assert.Equal(1, core.ResolveCount(explicit(0)))
}

func TestResolveCountHardCeiling(t *testing.T) {
	assert := assert.New(t)

	// Image tools cap at 10 regardless of configuration
	fetcher := &countingFetcher{}
	core, err := searchtool.NewCore(searchtool.KindImage, fetcher.fetch,
		searchtool.WithMaxResults(50),
	)
	assert.NoError(err)
	assert.Equal(10, core.ResolveCount(nil))

	// Web tools cap at 6
	webFetch := func(ctx context.Context, query string, count int) ([]searchtool.WebResult, error) {
		return nil, nil
	}
	webCore, err := searchtool.NewCore(searchtool.KindWeb, webFetch,
		searchtool.WithMaxResults(50),
	)
	assert.NoError(err)
	assert.Equal(6, webCore.ResolveCount(nil))
}

func TestQualifiersChangeKey(t *testing.T) {
	assert := assert.New(t)
	store := cache.NewStore()

	first := &countingFetcher{results: images(1)}
	coreA, err := searchtool.NewCore(searchtool.KindImage, first.fetch,
		searchtool.WithStore(store, time.Minute),
		searchtool.WithQualifiers(map[string]string{"d": "concise"}),
	)
	assert.NoError(err)

	second := &countingFetcher{results: images(1)}
	coreB, err := searchtool.NewCore(searchtool.KindImage, second.fetch,
		searchtool.WithStore(store, time.Minute),
		searchtool.WithQualifiers(map[string]string{"d": "detailed"}),
	)
	assert.NoError(err)

	_, _, err = coreA.Search(context.Background(), "cats", 1)
	assert.NoError(err)

	// Different qualifiers miss the other core's entry
	_, cached, err := coreB.Search(context.Background(), "cats", 1)
	assert.NoError(err)
	assert.False(cached)
	assert.Equal(1, second.calls)
}
