package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"github.com/jpillora/backoff"
	"go.uber.org/zap"
)

// CoinIndex maps free-text user input (ticker symbol or full name) to a
// canonical coin id. Resolution checks three layers in order: the explicit
// symbol override table, the name index, then the symbol index. Within a
// layer the first listing wins, which preserves the catalog's own ranking
// for ambiguous symbols.
type CoinIndex struct {
	lister domain.CoinLister
	logger *zap.Logger

	mu           sync.RWMutex
	symbolToID   map[string]string
	nameToID     map[string]string
	displayNames map[string]string
}

func NewCoinIndex(lister domain.CoinLister, logger *zap.Logger) *CoinIndex {
	return &CoinIndex{
		lister:       lister,
		logger:       logger,
		symbolToID:   make(map[string]string),
		nameToID:     make(map[string]string),
		displayNames: make(map[string]string),
	}
}

// Load fetches the coins catalog and rebuilds the index, retrying with
// backoff until it succeeds or ctx is cancelled. The bot cannot resolve user
// input before the first successful load.
func (i *CoinIndex) Load(ctx context.Context) error {
	retry := &backoff.Backoff{Min: time.Second, Max: time.Minute, Jitter: true}

	for {
		coins, err := i.lister.ListCoins(ctx)
		if err == nil {
			i.rebuild(coins)
			i.logger.Info("coin index loaded", zap.Int("coins", len(coins)))
			return nil
		}

		wait := retry.Duration()
		i.logger.Warn("failed to load coins list, retrying",
			zap.Duration("retry_in", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (i *CoinIndex) rebuild(coins []domain.CoinListing) {
	symbolToID := make(map[string]string, len(coins))
	nameToID := make(map[string]string, len(coins))
	displayNames := make(map[string]string, len(coins))

	for _, coin := range coins {
		symbol := strings.ToLower(coin.Symbol)
		name := strings.ToLower(coin.Name)
		if _, exists := symbolToID[symbol]; !exists {
			symbolToID[symbol] = coin.ID
		}
		if _, exists := nameToID[name]; !exists {
			nameToID[name] = coin.ID
		}
		if _, exists := displayNames[coin.ID]; !exists {
			displayNames[coin.ID] = coin.Name
		}
	}

	i.mu.Lock()
	i.symbolToID = symbolToID
	i.nameToID = nameToID
	i.displayNames = displayNames
	i.mu.Unlock()
}

// Resolve returns the canonical coin id for user input, or false when the
// input matches nothing.
func (i *CoinIndex) Resolve(input string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}

	if coinID, ok := symbolPriorityMap[key]; ok {
		return coinID, true
	}

	i.mu.RLock()
	defer i.mu.RUnlock()
	if coinID, ok := i.nameToID[key]; ok {
		return coinID, true
	}
	if coinID, ok := i.symbolToID[key]; ok {
		return coinID, true
	}
	return "", false
}

// DisplayName returns the case-sensitive catalog name for a coin id, falling
// back to the id itself when the catalog has not been loaded.
func (i *CoinIndex) DisplayName(coinID string) string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if name, ok := i.displayNames[coinID]; ok {
		return name
	}
	return coinID
}
