package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "blog-api",
	})
}

// StatusHandler reports database liveness
type StatusHandler struct {
	db *gorm.DB
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(db *gorm.DB) *StatusHandler {
	return &StatusHandler{db: db}
}

// Status returns the current time as reported by the database
func (h *StatusHandler) Status(c echo.Context) error {
	var now string
	if err := h.db.Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reach the database")
	}
	return c.JSON(http.StatusOK, echo.Map{"database_time": now})
}
