package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"habit-tracker/internal/database"
	"habit-tracker/internal/habits"
	"habit-tracker/internal/logger"
	"habit-tracker/internal/services"
	"habit-tracker/internal/utils"
)

const requestTimeout = 10 * time.Second

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	message := `🎯 <b>Habit Tracker</b>

Log one check-in a day: how much you coded and whether you doomscrolled.

/log - daily check-in
/today - today's entry
/week - 7-day streaks
/year - year heatmap
/mode - switch weekly / yearly view
/view - show the current view
/help - help`

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleLog(msg *tgbotapi.Message) {
	in, ok, err := parseLogCommand(msg.Text)
	if err != nil {
		b.SendMessageOrLogError(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if !ok {
		today := b.services.Habit.Today().Format(habits.DateLayout)
		if err := b.SendCheckInPrompt(today); err != nil {
			logger.Log.Error("❌ failed to send check-in prompt", zap.Error(err))
		}
		return
	}

	b.saveCheckIn(ctx, in)
}

func (b *Bot) saveCheckIn(ctx context.Context, in services.CheckIn) {
	entry, err := b.services.Habit.Save(ctx, in)
	switch {
	case errors.Is(err, database.ErrInvalidCodingLevel):
		b.SendMessageOrLogError("❌ Coding level must be 0, 1 or 2")
		return
	case errors.Is(err, database.ErrInvalidDate):
		b.SendMessageOrLogError("❌ Date must be YYYY-MM-DD")
		return
	case errors.Is(err, services.ErrFutureDate):
		b.SendMessageOrLogError("❌ That day has not happened yet")
		return
	case err != nil:
		b.SendMessageOrLogError("❌ Failed to save the check-in")
		return
	}

	if err := b.services.Notification.Celebrate(entry); err != nil {
		logger.Log.Warn("⚠️ failed to send celebration", zap.Error(err))
	}
}

func (b *Bot) handleToday(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	entry, err := b.services.Habit.GetTodayHabit(ctx)
	if errors.Is(err, database.ErrNotFound) {
		b.SendMessageOrLogError("📭 No check-in yet today. Use /log")
		return
	}
	if err != nil {
		b.SendMessageOrLogError("❌ Failed to load today's entry")
		return
	}

	b.SendMessageOrLogError(utils.FormatEntry(entry))
}

func (b *Bot) handleWeek(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	message, err := b.services.Notification.WeeklyMessage(ctx, "📈 <b>Last 7 days</b> (%s)")
	if err != nil {
		logger.Log.Warn("⚠️ failed to build weekly view", zap.Error(err))
		b.SendMessageOrLogError("❌ Failed to load the weekly view")
		return
	}
	b.SendMessageOrLogError(message)
}

func (b *Bot) handleYear(msg *tgbotapi.Message) {
	dims := habits.Dimensions
	if args := strings.Fields(msg.Text); len(args) > 1 {
		dim, ok := habits.ParseDimension(strings.ToLower(args[1]))
		if !ok {
			b.SendMessageOrLogError("❌ Use /year coding or /year doomscroll")
			return
		}
		dims = []habits.Dimension{dim}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	for _, dim := range dims {
		text, err := b.services.Tracker.RenderYear(ctx, dim)
		if err != nil {
			logger.Log.Warn("⚠️ failed to render heatmap", zap.String("dimension", string(dim)), zap.Error(err))
			b.SendMessageOrLogError("❌ Failed to load the year view")
			return
		}
		b.SendMessageOrLogError(fmt.Sprintf("%s %s", utils.GetDimensionEmoji(dim), text))
	}
}

func (b *Bot) handleView(msg *tgbotapi.Message) {
	b.showView(msg, b.viewMode(msg.Chat.ID))
}

func (b *Bot) handleMode(msg *tgbotapi.Message) {
	mode := b.toggleViewMode(msg.Chat.ID)
	b.SendMessageOrLogError(fmt.Sprintf("🔀 View: %s", mode))
	b.showView(msg, mode)
}

func (b *Bot) showView(msg *tgbotapi.Message, mode services.ViewMode) {
	if mode == services.Yearly {
		b.handleYear(msg)
		return
	}
	b.handleWeek(msg)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	message := `📚 <b>Commands</b>

<b>Check-in:</b>
/log - open the check-in keyboard for today
/log coding=[0-2] doom=[yes|no] - log in one message
/log coding=1 doom=no date=2025-01-06 - log a past day
/today - show today's entry

<b>Views:</b>
/week - 7-day streak tracker
/year [coding|doomscroll] - year heatmap
/mode - switch between weekly and yearly
/view - show the current view

<b>Coding levels:</b>
0 - no coding
1 - light
2 - heavy

<b>Streaks:</b>
` + utils.FormatDayStateLegend() + `
Three missed days in a row end a streak.`

	b.SendMessageOrLogError(message)
}
