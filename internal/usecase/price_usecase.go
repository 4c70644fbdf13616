package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"go.uber.org/zap"
)

// PriceCache serves USD prices from a single shared cache with one
// last-update timestamp. A request is answered from cache only when every
// requested id is present and the cache is within the TTL; any partial hit
// forces a full fresh fetch of the whole requested set. That trades a few
// redundant upstream calls for never mixing quotes of different ages.
type PriceCache struct {
	fetcher domain.PriceFetcher
	ttl     time.Duration
	logger  *zap.Logger

	mu         sync.RWMutex
	quotes     map[string]domain.PriceQuote
	lastUpdate time.Time
}

func NewPriceCache(fetcher domain.PriceFetcher, ttl time.Duration, logger *zap.Logger) *PriceCache {
	return &PriceCache{fetcher: fetcher, ttl: ttl, logger: logger}
}

// GetPrices returns current USD prices for the given coin ids. On upstream
// failure it logs and returns an empty map; callers treat missing ids as
// "price unavailable this cycle".
func (c *PriceCache) GetPrices(ctx context.Context, coinIDs []string) map[string]float64 {
	if len(coinIDs) == 0 {
		return map[string]float64{}
	}

	if cached, ok := c.fromCache(coinIDs); ok {
		return cached
	}

	fresh, err := c.fetcher.FetchPrices(ctx, coinIDs)
	if err != nil {
		c.logger.Error("failed to fetch prices", zap.Int("coins", len(coinIDs)), zap.Error(err))
		return map[string]float64{}
	}

	now := time.Now()
	quotes := make(map[string]domain.PriceQuote, len(fresh))
	result := make(map[string]float64, len(fresh))
	for coinID, price := range fresh {
		quotes[coinID] = domain.PriceQuote{CoinID: coinID, PriceUSD: price, FetchedAt: now}
		result[coinID] = price
	}

	// Replace the whole cache in one assignment so readers never observe a
	// mix of old and new quotes.
	c.mu.Lock()
	c.quotes = quotes
	c.lastUpdate = now
	c.mu.Unlock()

	return result
}

// GetPrice returns the current USD price for a single coin.
func (c *PriceCache) GetPrice(ctx context.Context, coinID string) (float64, bool) {
	price, ok := c.GetPrices(ctx, []string{coinID})[coinID]
	return price, ok
}

func (c *PriceCache) fromCache(coinIDs []string) (map[string]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastUpdate.IsZero() || time.Since(c.lastUpdate) > c.ttl {
		return nil, false
	}

	result := make(map[string]float64, len(coinIDs))
	for _, coinID := range coinIDs {
		quote, ok := c.quotes[coinID]
		if !ok {
			return nil, false
		}
		result[coinID] = quote.PriceUSD
	}
	return result, true
}
