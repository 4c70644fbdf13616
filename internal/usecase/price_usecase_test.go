package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPriceCache_ServesFromCacheWithinTTL(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 50000}}
	cache := NewPriceCache(fetcher, 30*time.Second, zap.NewNop())

	first := cache.GetPrices(ctx, []string{"bitcoin"})
	second := cache.GetPrices(ctx, []string{"bitcoin"})

	require.Equal(t, map[string]float64{"bitcoin": 50000}, first)
	require.Equal(t, first, second)
	require.Equal(t, 1, fetcher.callCount())
}

func TestPriceCache_PartialHitForcesFullRefresh(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 50000, "ethereum": 3000}}
	cache := NewPriceCache(fetcher, 30*time.Second, zap.NewNop())

	cache.GetPrices(ctx, []string{"bitcoin"})
	prices := cache.GetPrices(ctx, []string{"bitcoin", "ethereum"})

	require.Equal(t, map[string]float64{"bitcoin": 50000, "ethereum": 3000}, prices)
	require.Equal(t, 2, fetcher.callCount())
	// The second upstream call must re-request the cached coin as well.
	require.ElementsMatch(t, []string{"bitcoin", "ethereum"}, fetcher.calls[1])
}

func TestPriceCache_ExpiredCacheRefetches(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 50000}}
	cache := NewPriceCache(fetcher, time.Millisecond, zap.NewNop())

	cache.GetPrices(ctx, []string{"bitcoin"})
	time.Sleep(5 * time.Millisecond)
	cache.GetPrices(ctx, []string{"bitcoin"})

	require.Equal(t, 2, fetcher.callCount())
}

func TestPriceCache_FetchFailureReturnsEmptyMap(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	cache := NewPriceCache(fetcher, 30*time.Second, zap.NewNop())

	prices := cache.GetPrices(ctx, []string{"bitcoin"})

	require.Empty(t, prices)
}

func TestPriceCache_GetPrice(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 50000}}
	cache := NewPriceCache(fetcher, 30*time.Second, zap.NewNop())

	price, ok := cache.GetPrice(ctx, "bitcoin")
	require.True(t, ok)
	require.Equal(t, 50000.0, price)

	_, ok = cache.GetPrice(ctx, "unlisted-coin")
	require.False(t, ok)
}
