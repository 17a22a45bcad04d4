// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot for infrastructure layer.
// It is send-only: no update polling is started.
type Bot struct {
	bot    *tgbot.Bot
	chatID any
	logger zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper bound to one chat
func NewBot(token, chatID string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("telegram chat id is required")
	}

	bot, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Bot{
		bot:    bot,
		chatID: ParseChatID(chatID),
		logger: logger,
	}, nil
}

// ParseChatID returns a numeric id when possible, otherwise the raw
// value so channel usernames like "@feed" keep working
func ParseChatID(raw string) any {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id
	}
	return raw
}

// SendHTML sends an HTML formatted message to the configured chat
func (b *Bot) SendHTML(ctx context.Context, text string) error {
	_, err := b.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    b.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	b.logger.Debug().
		Int("length", len(text)).
		Msg("Telegram message sent")

	return nil
}
