package routes

import (
	"net/http"

	"fitsched/handlers"
	"fitsched/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the schedule engine.
func RegisterRoutes(r *gin.Engine, calendarHandler *handlers.CalendarHandler, reviewHandler *handlers.ReviewHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuthTrainerMiddleware()

	cal := r.Group("/api/calendar", auth)
	{
		cal.GET("/week", calendarHandler.GetWeek)
	}

	rev := r.Group("/api/review", auth)
	{
		rev.POST("/session", reviewHandler.StartSession)                         // fetch proposals, open session
		rev.GET("/session/:sessionID", reviewHandler.GetSession)                 // session + stats
		rev.POST("/session/:sessionID/toggle", reviewHandler.Toggle)             // flip one selection
		rev.POST("/session/:sessionID/select-all", reviewHandler.SelectAll)      // mark everything
		rev.POST("/session/:sessionID/deselect-all", reviewHandler.DeselectAll)  // clear selection
		rev.POST("/session/:sessionID/conflicts", reviewHandler.CheckConflicts)  // advisory pre-check
		rev.POST("/session/:sessionID/commit", reviewHandler.Commit)             // batch apply
	}
}
