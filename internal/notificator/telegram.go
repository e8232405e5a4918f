package notificator

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	tgModels "github.com/go-telegram/bot/models"

	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

// CommandHandler answers a text command sent by a subscriber.
// An empty reply means nothing is sent back.
type CommandHandler interface {
	HandleCommand(ctx context.Context, subscriber models.SubscriberID, text string) string
}

type TelegramNotificator struct {
	logger   *logger.Logger
	bot      *bot.Bot
	commands CommandHandler
}

func NewTelegramNotificator(logger *logger.Logger, token string) (*TelegramNotificator, error) {
	provider := &TelegramNotificator{
		logger: logger,
	}
	opts := []bot.Option{
		bot.WithDefaultHandler(provider.handler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	provider.bot = b

	return provider, nil
}

// SetCommandHandler must be called before Start.
func (t *TelegramNotificator) SetCommandHandler(h CommandHandler) {
	t.commands = h
}

// Start long-polls Telegram for updates until ctx is cancelled.
func (t *TelegramNotificator) Start(ctx context.Context) {
	t.logger.Info("Starting telegram long polling")
	t.bot.Start(ctx)
	t.logger.Info("Telegram long polling stopped")
}

// Send delivers a Markdown notification with link previews disabled.
func (t *TelegramNotificator) Send(ctx context.Context, chatID int64, message string) error {
	disablePreview := true
	params := &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               message,
		ParseMode:          tgModels.ParseModeMarkdownV1,
		LinkPreviewOptions: &tgModels.LinkPreviewOptions{IsDisabled: &disablePreview},
	}
	if _, err := t.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

func (t *TelegramNotificator) reply(ctx context.Context, chatID int64, text string) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if _, err := t.bot.SendMessage(ctx, params); err != nil {
		t.logger.Error("Failed to send reply", "chat", chatID, "error", err)
	}
}

func (t *TelegramNotificator) handler(ctx context.Context, b *bot.Bot, update *tgModels.Update) {
	subscriber, chatID, text, ok := commandFromUpdate(update)
	if !ok {
		return
	}
	if t.commands == nil {
		t.logger.Error("No command handler configured")
		return
	}
	t.logger.Debug("Telegram update", "subscriber", subscriber, "text", text)

	if answer := t.commands.HandleCommand(ctx, subscriber, text); answer != "" {
		t.reply(ctx, chatID, answer)
	}
}

// commandFromUpdate extracts who sent a text message and where to answer.
// The subscriber is the sending user, so notifications arrive in the private chat.
func commandFromUpdate(update *tgModels.Update) (models.SubscriberID, int64, string, bool) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return 0, 0, "", false
	}
	msg := update.Message
	subscriber := models.SubscriberID(msg.Chat.ID)
	if msg.From != nil {
		subscriber = models.SubscriberID(msg.From.ID)
	}
	return subscriber, msg.Chat.ID, msg.Text, true
}
