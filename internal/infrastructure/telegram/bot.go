package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
	"cryptodigest/internal/render"
	"cryptodigest/internal/usecase"
)

// broadcastPause spaces per-recipient sends during the daily fan-out.
const broadcastPause = 200 * time.Millisecond

// Bot serves the command surface and fans the daily digest out to
// subscribers. Digest computation itself lives in the usecase layer; the bot
// only dispatches rendered text.
type Bot struct {
	api         *tgbotapi.BotAPI
	digests     *usecase.DigestService
	subscribers ports.SubscriberStore
	formatter   *render.Formatter
	logger      *slog.Logger
}

// NewBot authenticates against the Telegram API.
func NewBot(token string, digests *usecase.DigestService, subscribers ports.SubscriberStore, formatter *render.Formatter, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		digests:     digests,
		subscribers: subscribers,
		formatter:   formatter,
		logger:      logger,
	}, nil
}

// Run consumes updates until the context ends.
func (b *Bot) Run(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	b.logger.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !message.IsCommand() {
		b.reply(chatID, b.plainTextResponse(message.Text))
		return
	}

	if err := b.subscribers.TouchLastActive(ctx, chatID); err != nil {
		b.logger.Warn("touch last active failed", "chat", chatID, "error", err)
	}

	switch message.Command() {
	case "start":
		b.handleStart(ctx, message)
	case "today":
		b.reply(chatID, b.digests.DailyDigest(ctx))
	case "hot":
		b.reply(chatID, b.digests.Trending(ctx))
	case "subscribe":
		b.handleSubscribe(ctx, message)
	case "unsubscribe":
		b.handleUnsubscribe(ctx, chatID)
	case "settings":
		b.handleSettings(ctx, chatID)
	case "help":
		b.reply(chatID, b.formatter.Help())
	default:
		b.reply(chatID, "Unknown command. Use /help to see what I can do!")
	}
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	sub := domain.Subscriber{ChatID: message.Chat.ID, Subscribed: true}
	if message.From != nil {
		sub.Username = message.From.UserName
		sub.FirstName = message.From.FirstName
		sub.LastName = message.From.LastName
	}

	if err := b.subscribers.AddSubscriber(ctx, sub); err != nil {
		b.logger.Warn("add subscriber failed", "chat", sub.ChatID, "error", err)
	}

	b.reply(message.Chat.ID, b.formatter.Welcome())
}

func (b *Bot) handleSubscribe(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	existed, err := b.subscribers.SetSubscribed(ctx, chatID, true)
	if err != nil {
		b.logger.Warn("subscribe failed", "chat", chatID, "error", err)
		b.reply(chatID, b.formatter.Error())
		return
	}

	if !existed {
		b.handleStart(ctx, message)
		return
	}

	b.reply(chatID, b.formatter.SubscribeSuccess())
}

func (b *Bot) handleSettings(ctx context.Context, chatID int64) {
	subscribed, err := b.subscribers.IsSubscribed(ctx, chatID)
	if err != nil {
		b.logger.Warn("settings lookup failed", "chat", chatID, "error", err)
	}
	b.reply(chatID, b.formatter.Settings(subscribed))
}

func (b *Bot) handleUnsubscribe(ctx context.Context, chatID int64) {
	if _, err := b.subscribers.SetSubscribed(ctx, chatID, false); err != nil {
		b.logger.Warn("unsubscribe failed", "chat", chatID, "error", err)
		b.reply(chatID, b.formatter.Error())
		return
	}

	b.reply(chatID, b.formatter.UnsubscribeSuccess())
}

// plainTextResponse nudges free-form messages toward the command surface.
func (b *Bot) plainTextResponse(text string) string {
	lowered := strings.ToLower(text)

	switch {
	case containsAny(lowered, "hi", "hello", "hey", "start"):
		return "\U0001f44b Hi there! I'm your crypto news assistant.\n\n" +
			"**Try these commands:**\n" +
			"• /today - Get today's digest\n" +
			"• /hot - Trending sentiment\n" +
			"• /help - Full command list"
	case containsAny(lowered, "news", "crypto", "bitcoin", "ethereum", "digest"):
		return "\U0001f4f0 **Want crypto news?**\n\n" +
			"• /today - Today's top digest\n" +
			"• /hot - Trending by sentiment\n" +
			"• /subscribe - Daily auto-delivery"
	default:
		return "\U0001f916 I'm here to help with crypto news!\n\n" +
			"**Popular commands:**\n" +
			"• /today - Latest crypto digest\n" +
			"• /hot - Trending news\n" +
			"• /help - All commands"
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// BroadcastDigest computes the digest once and fans it out to every
// subscriber. Per-recipient failures are counted, never fatal; chats that
// blocked the bot are unsubscribed.
func (b *Bot) BroadcastDigest(ctx context.Context) {
	started := time.Now()

	digest := b.digests.DailyDigest(ctx)

	ids, err := b.subscribers.SubscribedIDs(ctx)
	if err != nil {
		b.logger.Error("list subscribers failed", "error", err)
		return
	}
	if len(ids) == 0 {
		b.logger.Info("no subscribers, skipping broadcast")
		return
	}

	var sent, failed int
	for _, chatID := range ids {
		if ctx.Err() != nil {
			return
		}

		if err := b.reply(chatID, digest); err != nil {
			failed++
			b.logger.Warn("digest delivery failed", "chat", chatID, "error", err)

			if isBlockedError(err) {
				if _, uErr := b.subscribers.SetSubscribed(ctx, chatID, false); uErr == nil {
					b.logger.Info("unsubscribed unreachable chat", "chat", chatID)
				}
			}
			continue
		}
		sent++

		time.Sleep(broadcastPause)
	}

	b.logger.Info("broadcast done",
		"sent", sent, "failed", failed, "duration", time.Since(started).Round(time.Millisecond))
}

func isBlockedError(err error) bool {
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "bot was blocked") || strings.Contains(text, "chat not found")
}

// reply sends text to a chat, splitting messages over the Telegram limit.
func (b *Bot) reply(chatID int64, text string) error {
	for _, part := range SplitMessage(text, render.MaxMessageLength) {
		msg := tgbotapi.NewMessage(chatID, part)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.DisableWebPagePreview = true

		if _, err := b.api.Send(msg); err != nil {
			return err
		}
	}
	return nil
}
