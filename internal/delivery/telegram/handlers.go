package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/usecase"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AlertLimits bounds what a single user may store.
type AlertLimits struct {
	MaxPerUser int
	MinTarget  float64
	MaxTarget  float64
}

type Handlers struct {
	alerts *usecase.AlertUsecase
	prices *usecase.PriceCache
	coins  *usecase.CoinIndex
	limits AlertLimits
	logger *zap.Logger
}

func NewHandlers(alerts *usecase.AlertUsecase, prices *usecase.PriceCache, coins *usecase.CoinIndex, limits AlertLimits, logger *zap.Logger) *Handlers {
	return &Handlers{alerts: alerts, prices: prices, coins: coins, limits: limits, logger: logger}
}

func (h *Handlers) HandleUpdate(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !update.Message.IsCommand() {
		h.reply(api, update.Message.Chat.ID, "Unknown command 🤔\nUse /help to see what I can do.")
		return
	}
	h.handleCommand(ctx, api, update)
}

func (h *Handlers) handleCommand(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update) {
	command := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	h.logger.Info("telegram command received",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.String("command", command),
		zap.String("args", args))

	switch command {
	case "start":
		h.reply(api, chatID, WelcomeText)
	case "help":
		h.reply(api, chatID, HelpText)
	case "alert":
		h.handleAlert(ctx, api, chatID, userID, args)
	case "alerts":
		h.handleAlerts(ctx, api, chatID, userID)
	case "remove":
		h.handleRemove(ctx, api, chatID, userID, args)
	case "removeall":
		h.handleRemoveAll(ctx, api, chatID, userID)
	default:
		h.reply(api, chatID, "Unknown command 🤔\nUse /help to see what I can do.")
	}
}

func (h *Handlers) handleAlert(ctx context.Context, api *tgbotapi.BotAPI, chatID, userID int64, args string) {
	coin, isGreaterThan, rawTarget, err := ParseAlertArgs(args)
	if err != nil {
		h.reply(api, chatID, "❌ Invalid format. Use:\n/alert BTC > 100000\n/alert ETH < 2000")
		return
	}

	if h.alerts.CountForUser(ctx, userID) >= h.limits.MaxPerUser {
		h.reply(api, chatID, fmt.Sprintf("❌ Maximum %d alerts allowed", h.limits.MaxPerUser))
		return
	}

	coinID, ok := h.coins.Resolve(coin)
	if !ok {
		h.reply(api, chatID, fmt.Sprintf("❌ Invalid coin: %s", coin))
		return
	}

	target, err := decimal.NewFromString(rawTarget)
	if err != nil {
		h.reply(api, chatID, "❌ Invalid format. Use:\n/alert BTC > 100000\n/alert ETH < 2000")
		return
	}
	targetPrice, _ := target.Float64()
	if targetPrice < h.limits.MinTarget || targetPrice > h.limits.MaxTarget {
		h.reply(api, chatID, fmt.Sprintf("❌ Target price must be between %s and %s",
			usecase.FormatPrice(h.limits.MinTarget), usecase.FormatPrice(h.limits.MaxTarget)))
		return
	}

	currentPrice, ok := h.prices.GetPrice(ctx, coinID)
	if !ok {
		h.reply(api, chatID, "❌ Error fetching price. Please try again.")
		return
	}

	if !h.alerts.AddAlert(ctx, userID, coinID, targetPrice, isGreaterThan) {
		h.reply(api, chatID, "❌ This alert already exists")
		return
	}

	direction := "<"
	if isGreaterThan {
		direction = ">"
	}
	h.reply(api, chatID, fmt.Sprintf(
		"✅ Alert set: %s %s %s\nCurrent price: %s",
		h.coins.DisplayName(coinID),
		direction,
		usecase.FormatPrice(targetPrice),
		usecase.FormatPrice(currentPrice)))
}

func (h *Handlers) handleAlerts(ctx context.Context, api *tgbotapi.BotAPI, chatID, userID int64) {
	alerts := h.alerts.GetUserAlerts(ctx, userID)
	if len(alerts) == 0 {
		h.reply(api, chatID, "No active alerts.\nUse /alert to set one!")
		return
	}

	coinIDs := make([]string, 0, len(alerts))
	seen := make(map[string]struct{}, len(alerts))
	for _, alert := range alerts {
		if _, ok := seen[alert.CoinID]; ok {
			continue
		}
		seen[alert.CoinID] = struct{}{}
		coinIDs = append(coinIDs, alert.CoinID)
	}
	prices := h.prices.GetPrices(ctx, coinIDs)

	var builder strings.Builder
	builder.WriteString("📊 Your Alerts:\n\n")
	for i, alert := range alerts {
		builder.WriteString(fmt.Sprintf("%d. %s %s %s\n",
			i+1,
			h.coins.DisplayName(alert.CoinID),
			alert.Direction(),
			usecase.FormatPrice(alert.TargetPrice)))
		if currentPrice, ok := prices[alert.CoinID]; ok {
			builder.WriteString(fmt.Sprintf("Current: %s\n", usecase.FormatPrice(currentPrice)))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("Remove alert: /remove <number>\n")
	builder.WriteString("Remove alerts: /remove <coin>")
	h.reply(api, chatID, builder.String())
}

func (h *Handlers) handleRemove(ctx context.Context, api *tgbotapi.BotAPI, chatID, userID int64, args string) {
	query := strings.TrimSpace(args)
	if query == "" {
		h.reply(api, chatID, "❌ Invalid format\n\nTo remove alert by number:\n/remove 1\n\nTo remove all alerts for a coin:\n/remove BTC")
		return
	}

	if isAllDigits(query) {
		number, err := strconv.Atoi(query)
		if err != nil {
			h.reply(api, chatID, fmt.Sprintf("❌ Invalid alert number: %s", query))
			return
		}
		removed, coinID := h.alerts.RemoveAlertByIndex(ctx, userID, number-1)
		if !removed {
			h.reply(api, chatID, fmt.Sprintf("❌ Invalid alert number: %s", query))
			return
		}
		h.reply(api, chatID, fmt.Sprintf("✅ Alert for %s removed", h.coins.DisplayName(coinID)))
		return
	}

	coinID, ok := h.coins.Resolve(query)
	if !ok {
		h.reply(api, chatID, fmt.Sprintf("❌ Invalid coin: %s", query))
		return
	}
	if !h.alerts.RemoveAlertsByCoin(ctx, userID, coinID) {
		h.reply(api, chatID, fmt.Sprintf("❌ No active alerts for %s", query))
		return
	}
	h.reply(api, chatID, fmt.Sprintf("✅ Alerts for %s are removed", h.coins.DisplayName(coinID)))
}

func (h *Handlers) handleRemoveAll(ctx context.Context, api *tgbotapi.BotAPI, chatID, userID int64) {
	alerts := h.alerts.GetUserAlerts(ctx, userID)
	if len(alerts) == 0 {
		h.reply(api, chatID, "📝 You don't have any active alerts.")
		return
	}
	if !h.alerts.RemoveAllForUser(ctx, userID) {
		h.reply(api, chatID, "❌ Failed to remove alerts. Please try again.")
		return
	}
	h.reply(api, chatID, fmt.Sprintf("✅ Successfully removed %d alerts.", len(alerts)))
}

func (h *Handlers) reply(api *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := api.Send(msg); err != nil {
		h.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
