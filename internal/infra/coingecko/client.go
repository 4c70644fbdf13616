package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"go.uber.org/zap"
)

// Client talks to the CoinGecko v3 REST API. The http.Client timeout bounds
// every call so a hung upstream never stalls the alert checker.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) FetchPrices(ctx context.Context, coinIDs []string) (map[string]float64, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(coinIDs, ","))
	query.Set("vs_currencies", "usd")
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, query.Encode())

	var payload map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(payload))
	for coinID, quote := range payload {
		prices[coinID] = quote.USD
	}
	return prices, nil
}

func (c *Client) ListCoins(ctx context.Context) ([]domain.CoinListing, error) {
	endpoint := c.baseURL + "/coins/list"

	var payload []struct {
		ID     string `json:"id"`
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	coins := make([]domain.CoinListing, 0, len(payload))
	for _, coin := range payload {
		coins = append(coins, domain.CoinListing{ID: coin.ID, Symbol: coin.Symbol, Name: coin.Name})
	}
	return coins, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	c.logger.Debug("coingecko request start", zap.String("url", endpoint))
	response, err := c.client.Do(request)
	if err != nil {
		c.logger.Error("coingecko request failed", zap.String("url", endpoint), zap.Error(err))
		return err
	}
	defer response.Body.Close()

	c.logger.Debug(
		"coingecko request complete",
		zap.String("url", endpoint),
		zap.Int("status", response.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("coingecko error: status %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(out)
}
