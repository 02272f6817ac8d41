package handlers

import (
	"net/http"
	"time"

	"fitsched/config"
	"fitsched/services/calendar"
	"fitsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the reconciled weekly calendar.
type CalendarHandler struct {
	Svc    calendar.CalendarService
	Logger *zap.Logger
}

func NewCalendarHandler(svc calendar.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Logger: logger}
}

// GetWeek returns the 7-day window containing the anchor date.
// Query params: anchor (YYYY-MM-DD, default today), weekStart (weekday
// name, defaults per view), view (client|trainer), refresh (true forces a
// refetch of both sources; plain navigation recomputes from the snapshot).
func (h *CalendarHandler) GetWeek(c *gin.Context) {
	viewerID := c.GetString("trainerID")
	if viewerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing viewer identity", "")
		return
	}

	anchor := time.Now()
	if anchorStr := c.Query("anchor"); anchorStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", anchorStr, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid anchor date", err.Error())
			return
		}
		anchor = parsed
	}

	weekStartName := config.AppConfig.TrainerWeekStart
	if c.Query("view") == "client" {
		weekStartName = config.AppConfig.ClientWeekStart
	}
	if ws := c.Query("weekStart"); ws != "" {
		weekStartName = ws
	}
	weekStart, err := calendar.ParseWeekStart(weekStartName)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid week start", err.Error())
		return
	}

	refresh := c.Query("refresh") == "true"

	window, err := h.Svc.WeekView(c.Request.Context(), viewerID, anchor, weekStart, refresh)
	if err != nil {
		h.Logger.Error("failed to build week view", zap.String("viewerID", viewerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to build week view", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": window})
}
