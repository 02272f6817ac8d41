package handlers

import (
	"net/http"
	"strconv"

	"fitsched/config"
	"fitsched/services/review"
	"fitsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the proposal review flow.
type ReviewHandler struct {
	Svc    review.ReviewService
	Logger *zap.Logger
}

func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// StartSession fetches a fresh proposed schedule and opens a review session.
func (h *ReviewHandler) StartSession(c *gin.Context) {
	trainerID := c.GetString("trainerID")
	if trainerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing trainer identity", "")
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), trainerID)
	if err != nil {
		h.Logger.Error("failed to start review session", zap.String("trainerID", trainerID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch proposed schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the session with derived statistics.
func (h *ReviewHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}

	stats := review.DeriveStats(session.Proposed, session.Statistics)
	c.JSON(http.StatusOK, gin.H{"session": session, "stats": stats})
}

// Toggle flips one requestId's selection state.
func (h *ReviewHandler) Toggle(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		RequestID int `json:"requestId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.Toggle(c.Request.Context(), sessionID, input.RequestID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectAll marks every proposed entry.
func (h *ReviewHandler) SelectAll(c *gin.Context) {
	session, err := h.Svc.SelectAll(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DeselectAll clears the selection.
func (h *ReviewHandler) DeselectAll(c *gin.Context) {
	session, err := h.Svc.DeselectAll(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CheckConflicts runs the advisory pre-commit check over the selection,
// or the full proposal list when fullList is set.
func (h *ReviewHandler) CheckConflicts(c *gin.Context) {
	sessionID := c.Param("sessionID")

	fullList := c.Query("fullList") == "true"
	minBreak := config.AppConfig.MinBreakMinutes
	if mb := c.Query("minBreakMinutes"); mb != "" {
		parsed, err := strconv.Atoi(mb)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid minBreakMinutes", mb)
			return
		}
		minBreak = parsed
	}

	conflicts, err := h.Svc.CheckConflicts(c.Request.Context(), sessionID, fullList, minBreak)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
}

// Commit applies the selected entries and returns the aggregate outcome.
// Conflicts reported by CheckConflicts do not block this call; the
// assignment service re-validates each apply.
func (h *ReviewHandler) Commit(c *gin.Context) {
	sessionID := c.Param("sessionID")

	summary, err := h.Svc.Commit(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "review session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
