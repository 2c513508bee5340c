package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"habit-tracker/internal/habits"
	"habit-tracker/internal/logger"
	"habit-tracker/internal/utils"
)

// NotificationSender delivers messages to the user.
type NotificationSender interface {
	SendMessage(text string) error
	SendCheckInPrompt(date string) error
}

type NotificationService struct {
	sender       NotificationSender
	habitService *HabitService
	tracker      *TrackerService
}

func NewNotificationService(sender NotificationSender, hs *HabitService, ts *TrackerService) *NotificationService {
	return &NotificationService{
		sender:       sender,
		habitService: hs,
		tracker:      ts,
	}
}

// SendCheckInReminder prompts for today's check-in unless it already exists.
// It reports whether a prompt was sent.
func (ns *NotificationService) SendCheckInReminder(ctx context.Context) (bool, error) {
	logged, err := ns.habitService.HasEntryToday(ctx)
	if err != nil {
		logger.Log.Warn("⚠️ failed to check today's entry", zap.Error(err))
		return false, err
	}
	if logged {
		logger.Log.Debug("today's check-in already logged")
		return false, nil
	}

	today := ns.habitService.Today().Format(habits.DateLayout)
	logger.Log.Info("🔔 sending check-in reminder", zap.String("date", today))
	if err := ns.sender.SendCheckInPrompt(today); err != nil {
		logger.Log.Error("❌ failed to send check-in reminder", zap.Error(err))
		return false, err
	}
	return true, nil
}

// SendDailySummary sends the weekly tracker cards.
func (ns *NotificationService) SendDailySummary(ctx context.Context) error {
	message, err := ns.WeeklyMessage(ctx, "📊 <b>Streaks for %s</b>")
	if err != nil {
		logger.Log.Warn("⚠️ failed to build daily summary", zap.Error(err))
		return err
	}
	return ns.sender.SendMessage(message)
}

// WeeklyMessage renders every weekly tracker under a header; header may hold
// one %s verb for today's date.
func (ns *NotificationService) WeeklyMessage(ctx context.Context, header string) (string, error) {
	cards, err := ns.tracker.Weekly(ctx)
	if err != nil {
		return "", err
	}

	var message strings.Builder
	message.WriteString(fmt.Sprintf(header, ns.habitService.Today().Format(habits.DateLayout)))
	message.WriteString("\n\n")
	for _, card := range cards {
		message.WriteString(utils.FormatWeeklyCard(card))
		message.WriteString("\n\n")
	}
	return strings.TrimRight(message.String(), "\n"), nil
}

// Celebrate congratulates the user on a saved check-in.
func (ns *NotificationService) Celebrate(entry habits.Entry) error {
	return ns.sender.SendMessage(CelebrationMessage(entry))
}

// CelebrationMessage is the confetti replacement: a one-off message with no
// state behind it.
func CelebrationMessage(entry habits.Entry) string {
	var wins []string
	if habits.Coding.Completes(entry) {
		wins = append(wins, "💻 coded")
	}
	if habits.Doomscroll.Completes(entry) {
		wins = append(wins, "📵 no doomscrolling")
	}

	headline := "🎉🎊 Logged!"
	if len(wins) == len(habits.Dimensions) {
		headline = "🎉🎊🥳 Perfect day!"
	}

	message := headline + "\n" + utils.FormatEntry(entry)
	if len(wins) > 0 {
		message += "\n" + strings.Join(wins, " · ")
	} else {
		message += "\nTomorrow is a new day 🌅"
	}
	return message
}
