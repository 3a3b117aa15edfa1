package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram delivers chat messages to the orchestrator over long polling.
// The orchestrator only ever sees a chat id and a text line, so the
// transport is swappable.
type Telegram struct {
	api    *tgbotapi.BotAPI
	orch   Orchestrator
	logger *slog.Logger
}

func NewTelegram(token string, orch Orchestrator, logger *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{api: api, orch: orch, logger: logger}, nil
}

// Run polls for updates until ctx is cancelled. Updates for the same chat
// are handled in arrival order so the keyword-then-range dialogue cannot be
// reordered; distinct chats are handled concurrently.
func (t *Telegram) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := t.api.GetUpdatesChan(cfg)

	d := newDispatcher()
	defer d.closeAll()

	t.logger.Info("telegram bot started", "username", t.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			msg := update.Message
			d.enqueue(msg.Chat.ID, func() {
				t.handle(ctx, msg)
			})
		}
	}
}

func (t *Telegram) handle(ctx context.Context, msg *tgbotapi.Message) {
	var reply string
	markdown := false
	switch msg.Command() {
	case "start":
		reply = WelcomeText
	case "help":
		reply = HelpText
		markdown = true
	default:
		reply = t.orch.HandleMessage(ctx, msg.Chat.ID, msg.Text)
	}
	if reply == "" {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	if markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := t.api.Send(out); err != nil {
		t.logger.Error("send reply failed", "chat_id", msg.Chat.ID, "err", err)
	}
}
