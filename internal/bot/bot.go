// Package bot implements the Telegram front-end for the mini-app. It is a
// thin entry point: the only thing it does is answer /start with a button
// that opens the hosted web app. It never talks to the service API.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kompanion-app/kompanion/internal/miniapp/app"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

const welcomeText = "Welcome to Kompanion! Tap the button below to open the " +
	"app, fill in your profile and start meeting people."

// Application encapsulates the Telegram bot with its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger
	bot    *bot.Bot
}

// New creates a new bot Application with the /start handler registered
func New(cfg Config) (*Application, error) {
	a := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "miniapp-bot",
			Version: app.BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	b, err := bot.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}
	a.bot = b

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, a.handleStart)

	return a, nil
}

// Run starts long polling and blocks until a shutdown signal arrives
func (a *Application) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.logger.Info("miniapp bot starting", "webapp_url", a.cfg.WebAppURL)
	a.bot.Start(ctx)
	a.logger.Info("miniapp bot stopped")
	return nil
}

func (a *Application) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   welcomeText,
		ReplyMarkup: models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{{
				{
					Text:   "Open Kompanion",
					WebApp: &models.WebAppInfo{URL: a.cfg.WebAppURL},
				},
			}},
		},
	})
	if err != nil {
		a.logger.Error("failed to send welcome message",
			"chat_id", update.Message.Chat.ID,
			"err", err,
		)
		return
	}

	a.logger.Debug("welcome message sent", "chat_id", update.Message.Chat.ID)
}
