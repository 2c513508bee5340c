package services

import (
	"time"

	"habit-tracker/internal/database"
	"habit-tracker/internal/utils"
)

type ServiceManager struct {
	Notification *NotificationService
	Habit        *HabitService
	Tracker      *TrackerService
	repository   *database.Repository
}

func NewServiceManager(db *database.Database, clock utils.Clock, loc *time.Location) *ServiceManager {
	repo := database.NewRepository(db)
	habitService := NewHabitService(repo, clock, loc)

	return &ServiceManager{
		Notification: nil,
		Habit:        habitService,
		Tracker:      NewTrackerService(habitService),
		repository:   repo,
	}
}

func (sm *ServiceManager) SetNotificationSender(sender NotificationSender) {
	sm.Notification = NewNotificationService(sender, sm.Habit, sm.Tracker)
}
