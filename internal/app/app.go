package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"habit-tracker/internal/api"
	"habit-tracker/internal/config"
	"habit-tracker/internal/database"
	"habit-tracker/internal/logger"
	"habit-tracker/internal/services"
	"habit-tracker/internal/telegram"
	"habit-tracker/internal/utils"
)

type Application struct {
	config     *config.Config
	db         *database.Database
	bot        *telegram.Bot
	services   *services.ServiceManager
	cron       *cron.Cron
	server     *http.Server
	cancelFunc context.CancelFunc
	ctx        context.Context
}

func New(cfg *config.Config) (*Application, error) {
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadLocation(cfg.Schedule.Timezone)
	serviceManager := services.NewServiceManager(db, time.Now, loc)

	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot, err = telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.ChatID, serviceManager)
		if err != nil {
			db.Close()
			return nil, err
		}
		serviceManager.SetNotificationSender(bot)
	} else {
		logger.Log.Warn("⚠️ TG_TOKEN not set, running without the Telegram bot")
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		config:     cfg,
		db:         db,
		bot:        bot,
		services:   serviceManager,
		cron:       cron.New(cron.WithLocation(loc)),
		server:     api.NewServer(":"+cfg.Server.Port, api.SetupRouter(cfg, serviceManager, logger.Log)),
		cancelFunc: cancel,
		ctx:        ctx,
	}

	if err := app.setupCronJobs(); err != nil {
		cancel()
		db.Close()
		return nil, err
	}

	return app, nil
}

func (a *Application) Start() error {
	logger.Log.Info("🚀 starting application")

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("❌ http server stopped", zap.Error(err))
		}
	}()
	logger.Log.Info("🌐 API listening", zap.String("addr", a.server.Addr))

	if a.bot == nil {
		return nil
	}

	go a.bot.Start(a.ctx)
	a.cron.Start()

	if _, err := a.services.Notification.SendCheckInReminder(a.ctx); err != nil {
		logger.Log.Warn("⚠️ startup check-in reminder failed", zap.Error(err))
	}

	logger.Log.Info("✅ application started", zap.String("bot", a.bot.GetUsername()))
	return nil
}

func (a *Application) Stop() error {
	logger.Log.Info("🛑 stopping application")

	a.cancelFunc()
	<-a.cron.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Warn("⚠️ http server shutdown", zap.Error(err))
	}

	if err := a.db.Close(); err != nil {
		logger.Log.Warn("⚠️ failed to close database", zap.Error(err))
	}

	logger.Log.Info("✅ application stopped")
	return nil
}

func (a *Application) setupCronJobs() error {
	if a.bot == nil {
		return nil
	}

	// check-in reminder while today's entry is missing
	if _, err := a.cron.AddFunc(a.config.Schedule.ReminderCron, func() {
		if _, err := a.services.Notification.SendCheckInReminder(a.ctx); err != nil {
			logger.Log.Warn("⚠️ check-in reminder failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule reminder %q: %w", a.config.Schedule.ReminderCron, err)
	}

	// evening streak summary
	if _, err := a.cron.AddFunc(a.config.Schedule.SummaryCron, func() {
		if err := a.services.Notification.SendDailySummary(a.ctx); err != nil {
			logger.Log.Warn("⚠️ daily summary failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule summary %q: %w", a.config.Schedule.SummaryCron, err)
	}

	return nil
}
