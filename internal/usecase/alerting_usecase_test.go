package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/metrics"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryAlertRepo is an in-memory domain.AlertRepository for tests.
type memoryAlertRepo struct {
	mu      sync.Mutex
	nextID  uint
	alerts  []domain.Alert
	failAll bool
}

func (r *memoryAlertRepo) Create(_ context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("storage down")
	}
	for _, existing := range r.alerts {
		if existing.UserID == alert.UserID &&
			existing.CoinID == alert.CoinID &&
			existing.TargetPrice == alert.TargetPrice &&
			existing.IsGreaterThan == alert.IsGreaterThan {
			return domain.ErrDuplicateAlert
		}
	}
	r.nextID++
	alert.ID = r.nextID
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	}
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *memoryAlertRepo) ListByUser(_ context.Context, userID int64) ([]domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, errors.New("storage down")
	}
	var result []domain.Alert
	for _, alert := range r.alerts {
		if alert.UserID == userID {
			result = append(result, alert)
		}
	}
	return result, nil
}

func (r *memoryAlertRepo) ListAll(_ context.Context) ([]domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, errors.New("storage down")
	}
	return append([]domain.Alert(nil), r.alerts...), nil
}

func (r *memoryAlertRepo) Delete(_ context.Context, alertID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, alert := range r.alerts {
		if alert.ID == alertID {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryAlertRepo) DeleteOwned(_ context.Context, userID int64, alertID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, alert := range r.alerts {
		if alert.ID == alertID && alert.UserID == userID {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryAlertRepo) DeleteByCoin(_ context.Context, userID int64, coinID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []domain.Alert
	removed := false
	for _, alert := range r.alerts {
		if alert.UserID == userID && alert.CoinID == coinID {
			removed = true
			continue
		}
		kept = append(kept, alert)
	}
	r.alerts = kept
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memoryAlertRepo) DeleteAllByUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []domain.Alert
	for _, alert := range r.alerts {
		if alert.UserID != userID {
			kept = append(kept, alert)
		}
	}
	r.alerts = kept
	return nil
}

func (r *memoryAlertRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, alert := range r.alerts {
		if alert.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeFetcher serves canned prices and records every upstream request.
type fakeFetcher struct {
	mu     sync.Mutex
	prices map[string]float64
	err    error
	calls  [][]string
}

func (f *fakeFetcher) FetchPrices(_ context.Context, coinIDs []string) (map[string]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string(nil), coinIDs...))
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]float64)
	for _, coinID := range coinIDs {
		if price, ok := f.prices[coinID]; ok {
			result[coinID] = price
		}
	}
	return result, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// recordingNotifier captures messages per user and can fail selected users.
type recordingNotifier struct {
	mu       sync.Mutex
	messages map[int64][]string
	failFor  map[int64]bool
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{messages: make(map[int64][]string), failFor: make(map[int64]bool)}
}

func (n *recordingNotifier) Notify(userID int64, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failFor[userID] {
		return errors.New("delivery failed")
	}
	n.messages[userID] = append(n.messages[userID], text)
	return nil
}

type staticNamer map[string]string

func (n staticNamer) DisplayName(coinID string) string {
	if name, ok := n[coinID]; ok {
		return name
	}
	return coinID
}

func newTestChecker(repo *memoryAlertRepo, fetcher *fakeFetcher, notifier Notifier, namer CoinNamer) (*AlertChecker, *AlertUsecase) {
	logger := zap.NewNop()
	alertUC := NewAlertUsecase(repo, logger)
	priceCache := NewPriceCache(fetcher, 30*time.Second, logger)
	checker := NewAlertChecker(alertUC, priceCache, namer, notifier, metrics.New(), logger, 30*time.Second)
	return checker, alertUC
}

func TestAlertChecker_ExactTargetPriceDoesNotTrigger(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 100}}
	notifier := newRecordingNotifier()
	checker, alertUC := newTestChecker(repo, fetcher, notifier, staticNamer{})

	require.True(t, alertUC.AddAlert(ctx, 1, "bitcoin", 100, true))
	require.True(t, alertUC.AddAlert(ctx, 1, "bitcoin", 100, false))

	checker.CheckAlerts(ctx)

	require.Empty(t, notifier.messages)
	require.Len(t, alertUC.GetUserAlerts(ctx, 1), 2)
}

func TestAlertChecker_OneCycleNotifiesAndRemovesAlert(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 51000}}
	notifier := newRecordingNotifier()
	checker, alertUC := newTestChecker(repo, fetcher, notifier, staticNamer{"bitcoin": "bitcoin"})

	require.True(t, alertUC.AddAlert(ctx, 42, "bitcoin", 50000, true))

	checker.CheckAlerts(ctx)

	require.Len(t, notifier.messages[42], 1)
	message := notifier.messages[42][0]
	require.Contains(t, message, "bitcoin")
	require.Contains(t, message, "$51,000.00")
	require.Empty(t, alertUC.GetUserAlerts(ctx, 42))

	// Price still past target: the alert must not fire again.
	checker.CheckAlerts(ctx)
	require.Len(t, notifier.messages[42], 1)
}

func TestAlertChecker_GroupsTriggeredAlertsPerUser(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 60000, "ethereum": 1500}}
	notifier := newRecordingNotifier()
	namer := staticNamer{"bitcoin": "Bitcoin", "ethereum": "Ethereum"}
	checker, alertUC := newTestChecker(repo, fetcher, notifier, namer)

	require.True(t, alertUC.AddAlert(ctx, 7, "bitcoin", 50000, true))
	require.True(t, alertUC.AddAlert(ctx, 7, "ethereum", 2000, false))

	checker.CheckAlerts(ctx)

	require.Len(t, notifier.messages[7], 1, "expected one consolidated message, not one per alert")
	message := notifier.messages[7][0]
	require.Contains(t, message, "Bitcoin")
	require.Contains(t, message, "Ethereum")
}

func TestAlertChecker_SkipsAlertsWithoutPrice(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 60000}}
	notifier := newRecordingNotifier()
	checker, alertUC := newTestChecker(repo, fetcher, notifier, staticNamer{})

	require.True(t, alertUC.AddAlert(ctx, 1, "bitcoin", 50000, true))
	require.True(t, alertUC.AddAlert(ctx, 1, "unlisted-coin", 1, true))

	checker.CheckAlerts(ctx)

	// Triggered alert handled, unpriced alert left armed.
	remaining := alertUC.GetUserAlerts(ctx, 1)
	require.Len(t, remaining, 1)
	require.Equal(t, "unlisted-coin", remaining[0].CoinID)
}

func TestAlertChecker_DeliveryFailureDoesNotBlockOtherUsers(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{prices: map[string]float64{"bitcoin": 60000}}
	notifier := newRecordingNotifier()
	notifier.failFor[1] = true
	checker, alertUC := newTestChecker(repo, fetcher, notifier, staticNamer{})

	require.True(t, alertUC.AddAlert(ctx, 1, "bitcoin", 50000, true))
	require.True(t, alertUC.AddAlert(ctx, 2, "bitcoin", 50000, true))

	checker.CheckAlerts(ctx)

	require.Empty(t, notifier.messages[1])
	require.Len(t, notifier.messages[2], 1)
}

func TestAlertChecker_UpstreamFailureLeavesAlertsArmed(t *testing.T) {
	ctx := context.Background()
	repo := &memoryAlertRepo{}
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	notifier := newRecordingNotifier()
	checker, alertUC := newTestChecker(repo, fetcher, notifier, staticNamer{})

	require.True(t, alertUC.AddAlert(ctx, 1, "bitcoin", 50000, true))

	checker.CheckAlerts(ctx)

	require.Empty(t, notifier.messages)
	require.Len(t, alertUC.GetUserAlerts(ctx, 1), 1)
}
