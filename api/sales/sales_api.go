package sales

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	salesService "inventory.GO/service/sales"
)

func init() {
	api.RegisterModule(RegisterSalesRoutes)
}

func RegisterSalesRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := salesService.NewService(db)

	// POST /api/orders/sell – decrement stock against an existing sales order
	apiGroup.POST("/orders/sell", func(c echo.Context) error {
		var body struct {
			OrderID   uint `json:"order_id"`
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err := svc.PlaceSale(body.OrderID, body.ProductID, body.Quantity)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
		case errors.Is(err, salesService.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, salesService.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown order or product"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	})
}
