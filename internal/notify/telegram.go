package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramNotifier copies operator notifications to a chat
type TelegramNotifier struct {
	api    *bot.Bot
	chatID int64
}

// NewTelegramNotifier creates the bot client. Extra options are passed to bot.New.
func NewTelegramNotifier(token string, chatID int64, opts ...bot.Option) (*TelegramNotifier, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)
	api, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, msg Message) error {
	text := msg.Text
	if text == "" {
		text = msg.Subject
	}
	_, err := n.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      "<b>" + html.EscapeString(msg.Subject) + "</b>\n" + html.EscapeString(text),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
