package domain

import (
	"context"
	"time"
)

// PriceQuote is an ephemeral snapshot of one coin's USD price. Quotes are
// cached for a short TTL and never persisted.
type PriceQuote struct {
	CoinID    string
	PriceUSD  float64
	FetchedAt time.Time
}

// CoinListing is one row of the upstream coins catalog, used to build the
// symbol/name resolution index.
type CoinListing struct {
	ID     string
	Symbol string
	Name   string
}

// PriceFetcher resolves a set of coin ids to current USD prices in one
// upstream call.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, coinIDs []string) (map[string]float64, error)
}

// CoinLister returns the full upstream coins catalog.
type CoinLister interface {
	ListCoins(ctx context.Context) ([]CoinListing, error)
}
