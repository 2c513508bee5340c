package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habit-tracker/internal/database"
	"habit-tracker/internal/habits"
	"habit-tracker/internal/services"
)

// HabitController serves the dashboard data.
type HabitController struct {
	services *services.ServiceManager
}

func NewHabitController(sm *services.ServiceManager) *HabitController {
	return &HabitController{services: sm}
}

// ListHabits returns raw entries for the weekly (last 7 days) or yearly view.
func (h *HabitController) ListHabits(ctx *gin.Context) {
	mode, err := services.ParseViewMode(ctx.Query("view"))
	if err != nil {
		fail(ctx, http.StatusBadRequest, 40001, err.Error())
		return
	}

	var entries []habits.Entry
	if mode == services.Yearly {
		entries, err = h.services.Habit.GetYearHabits(ctx.Request.Context())
	} else {
		entries, err = h.services.Habit.GetWeekHabits(ctx.Request.Context())
	}
	if err != nil {
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50001, "failed to load habits")
		return
	}

	success(ctx, gin.H{"view": mode, "entries": entries})
}

// Weekly returns the streak tracker cards.
func (h *HabitController) Weekly(ctx *gin.Context) {
	cards, err := h.services.Tracker.Weekly(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50002, "failed to load weekly view")
		return
	}
	success(ctx, cards)
}

// Heatmap returns heatmap data for one dimension, or both when none is given.
func (h *HabitController) Heatmap(ctx *gin.Context) {
	name := ctx.Query("dimension")
	if name == "" {
		views, err := h.services.Tracker.Yearly(ctx.Request.Context())
		if err != nil {
			_ = ctx.Error(err)
			fail(ctx, http.StatusInternalServerError, 50003, "failed to load heatmap")
			return
		}
		success(ctx, views)
		return
	}

	dim, ok := habits.ParseDimension(name)
	if !ok {
		fail(ctx, http.StatusBadRequest, 40002, "dimension must be coding or doomscroll")
		return
	}
	view, err := h.services.Tracker.Heatmap(ctx.Request.Context(), dim)
	if err != nil {
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50003, "failed to load heatmap")
		return
	}
	success(ctx, view)
}

// Today returns today's entry and whether the check-in is still due.
func (h *HabitController) Today(ctx *gin.Context) {
	entry, err := h.services.Habit.GetTodayHabit(ctx.Request.Context())
	if errors.Is(err, database.ErrNotFound) {
		success(ctx, gin.H{"check_in_due": true})
		return
	}
	if err != nil {
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50004, "failed to load today's entry")
		return
	}
	success(ctx, gin.H{"check_in_due": false, "entry": entry})
}

// Save upserts a check-in.
func (h *HabitController) Save(ctx *gin.Context) {
	var in services.CheckIn
	if err := ctx.ShouldBindJSON(&in); err != nil {
		fail(ctx, http.StatusBadRequest, 40003, "invalid JSON body")
		return
	}

	entry, err := h.services.Habit.Save(ctx.Request.Context(), in)
	switch {
	case errors.Is(err, database.ErrInvalidCodingLevel),
		errors.Is(err, database.ErrInvalidDate),
		errors.Is(err, services.ErrFutureDate):
		fail(ctx, http.StatusBadRequest, 40004, err.Error())
		return
	case err != nil:
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50005, "failed to save habit entry")
		return
	}

	created(ctx, gin.H{
		"entry":       entry,
		"celebration": services.CelebrationMessage(entry),
	})
}

// Delete removes the entry for :date.
func (h *HabitController) Delete(ctx *gin.Context) {
	err := h.services.Habit.Delete(ctx.Request.Context(), ctx.Param("date"))
	if errors.Is(err, database.ErrInvalidDate) {
		fail(ctx, http.StatusBadRequest, 40005, err.Error())
		return
	}
	if err != nil {
		_ = ctx.Error(err)
		fail(ctx, http.StatusInternalServerError, 50006, "failed to delete habit entry")
		return
	}
	success(ctx, nil)
}
