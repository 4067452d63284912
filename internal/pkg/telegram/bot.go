package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Config struct {
	Token string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		Token: env.GetVariableOrDefault(ctx, "TELEGRAM_BOT_TOKEN", ""),
	}
}

type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot delivers report text to telegram chats and channels.
type Bot struct {
	api api
}

func New(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token must be provided")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Bot{api: bot}, nil
}

func (b *Bot) Send(ctx context.Context, destination, text string) error {
	msg, err := newMessage(destination, text)
	if err != nil {
		return err
	}

	sent, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", destination, err)
	}

	logging.GetFromContext(ctx).Debug("message sent", "destination", destination, "message_id", sent.MessageID)

	return nil
}

// newMessage addresses numeric destinations as chat ids and anything else as
// a channel username.
func newMessage(destination, text string) (tgbotapi.MessageConfig, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return tgbotapi.MessageConfig{}, fmt.Errorf("empty destination")
	}

	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(destination, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		if !strings.HasPrefix(destination, "@") {
			destination = "@" + destination
		}
		msg = tgbotapi.NewMessageToChannel(destination, text)
	}

	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	return msg, nil
}
