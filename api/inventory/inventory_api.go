package inventory

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	inventoryRepo "inventory.GO/model/repository/inventory"
	warehouseRepo "inventory.GO/model/repository/warehouse"
	summaryService "inventory.GO/service/summary"
)

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	lots := inventoryRepo.NewInventoryRepository(db)
	warehouses := warehouseRepo.NewWarehouseRepository(db)
	summary := summaryService.NewService(db)

	// GET /api/inventory – committed inventory snapshot
	apiGroup.GET("/inventory", func(c echo.Context) error {
		rows, err := lots.Snapshot()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"inventory": rows})
	})

	// GET /api/warehouses – capacity view, most free space first
	apiGroup.GET("/warehouses", func(c echo.Context) error {
		caps, err := warehouses.CapacitiesByFreeDesc()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		type row struct {
			WarehouseID uint `json:"warehouse_id"`
			Total       int  `json:"total"`
			Occupied    int  `json:"occupied"`
			Free        int  `json:"free"`
		}
		out := make([]row, 0, len(caps))
		for _, w := range caps {
			out = append(out, row{WarehouseID: w.WarehouseID, Total: w.Total, Occupied: w.Occupied, Free: w.Free()})
		}
		return c.JSON(http.StatusOK, echo.Map{"warehouses": out})
	})

	// GET /api/dashboard – on-demand aggregation (public, see config.GetAuthSkipperPaths)
	apiGroup.GET("/dashboard", func(c echo.Context) error {
		sum, err := summary.Get()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, sum)
	})
}
