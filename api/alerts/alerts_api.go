package alerts

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	alertRepo "inventory.GO/model/repository/alert"
)

func init() {
	api.RegisterModule(RegisterAlertRoutes)
}

func RegisterAlertRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := alertRepo.NewAlertRepository(db)

	// GET /api/alerts?since_id=N – append-only alert log, oldest first
	apiGroup.GET("/alerts", func(c echo.Context) error {
		sinceID, _ := strconv.ParseUint(c.QueryParam("since_id"), 10, 32)
		list, err := repo.ListSince(uint(sinceID))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"alerts": list})
	})
}
