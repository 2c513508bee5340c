package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"habit-tracker/internal/logger"
	"habit-tracker/internal/services"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	services *services.ServiceManager
	handlers map[string]func(*tgbotapi.Message)

	mu        sync.Mutex
	viewModes map[int64]services.ViewMode
}

func NewBot(token string, chatID int64, serviceManager *services.ServiceManager) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	bot := &Bot{
		bot:       botAPI,
		chatID:    chatID,
		services:  serviceManager,
		handlers:  make(map[string]func(*tgbotapi.Message)),
		viewModes: make(map[int64]services.ViewMode),
	}

	bot.registerHandlers()
	logger.Log.Info("🤖 bot initialized", zap.String("username", botAPI.Self.UserName))
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.handlers["/start"] = b.handleStart
	b.handlers["/log"] = b.handleLog
	b.handlers["/today"] = b.handleToday
	b.handlers["/week"] = b.handleWeek
	b.handlers["/year"] = b.handleYear
	b.handlers["/view"] = b.handleView
	b.handlers["/mode"] = b.handleMode
	b.handlers["/help"] = b.handleHelp
}

func (b *Bot) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "HTML"
	_, err := b.bot.Send(msg)
	return err
}

// SendCheckInPrompt opens the daily check-in for date with the coding level
// keyboard. The doomscroll question follows once a level is picked.
func (b *Bot) SendCheckInPrompt(date string) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("📝 <b>Daily check-in %s</b>\n\n💻 How much did you code?", date))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = codingLevelKeyboard(date)
	_, err := b.bot.Send(msg)
	return err
}

func (b *Bot) sendDoomscrollPrompt(date string, codingLevel int) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("📱 Did you doomscroll on %s?", date))
	msg.ReplyMarkup = doomscrollKeyboard(date, codingLevel)
	_, err := b.bot.Send(msg)
	return err
}

func codingLevelKeyboard(date string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("0️⃣ None", codingCallback(date, 0)),
			tgbotapi.NewInlineKeyboardButtonData("1️⃣ Light", codingCallback(date, 1)),
			tgbotapi.NewInlineKeyboardButtonData("2️⃣ Heavy", codingCallback(date, 2)),
		),
	)
}

func doomscrollKeyboard(date string, codingLevel int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("😔 Yes", doomscrollCallback(date, codingLevel, true)),
			tgbotapi.NewInlineKeyboardButtonData("💪 No", doomscrollCallback(date, codingLevel, false)),
		),
	)
}

func (b *Bot) GetUsername() string {
	return b.bot.Self.UserName
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	if update.Message.Chat.ID != b.chatID {
		logger.Log.Warn("⛔ message from unknown chat", zap.Int64("chat_id", update.Message.Chat.ID))
		return
	}

	b.handleMessage(update.Message)
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return
	}

	command := strings.Fields(text)[0]
	// "/week@my_bot" in group chats
	command, _, _ = strings.Cut(command, "@")

	if handler, exists := b.handlers[command]; exists {
		handler(msg)
	} else {
		b.SendMessageOrLogError("❌ Unknown command. Use /help")
	}
}

func (b *Bot) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := b.bot.Request(tgbotapi.NewCallback(callback.ID, "✅")); err != nil {
			logger.Log.Warn("⚠️ callback ack failed", zap.Error(err))
		}
	}()

	if callback.Message == nil || callback.Message.Chat.ID != b.chatID {
		return
	}

	logger.Log.Debug("received callback", zap.String("data", callback.Data))

	step, err := parseCheckInCallback(callback.Data)
	if err != nil {
		logger.Log.Warn("⚠️ bad callback", zap.String("data", callback.Data), zap.Error(err))
		b.SendMessageOrLogError("❌ Could not process the request")
		return
	}

	b.safeDeleteMessage(callback.Message.MessageID)

	if !step.complete {
		if err := b.sendDoomscrollPrompt(step.checkIn.Date, step.checkIn.CodingLevel); err != nil {
			logger.Log.Error("❌ failed to send doomscroll prompt", zap.Error(err))
		}
		return
	}

	b.saveCheckIn(ctx, step.checkIn)
}

// safeDeleteMessage removes an answered keyboard; failures are only logged.
func (b *Bot) safeDeleteMessage(messageID int) {
	if _, err := b.bot.Request(tgbotapi.NewDeleteMessage(b.chatID, messageID)); err != nil {
		logger.Log.Warn("⚠️ failed to delete message", zap.Int("message_id", messageID), zap.Error(err))
	}
}

func (b *Bot) viewMode(chatID int64) services.ViewMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	if mode, ok := b.viewModes[chatID]; ok {
		return mode
	}
	return services.Weekly
}

func (b *Bot) toggleViewMode(chatID int64) services.ViewMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	mode, ok := b.viewModes[chatID]
	if !ok {
		mode = services.Weekly
	}
	mode = mode.Toggle()
	b.viewModes[chatID] = mode
	return mode
}
