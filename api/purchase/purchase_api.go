package purchase

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	purchaseRepo "inventory.GO/model/repository/purchase"
	allocationService "inventory.GO/service/allocation"
)

func init() {
	api.RegisterModule(RegisterPurchaseRoutes)
}

func RegisterPurchaseRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/orders")
	svc := allocationService.NewService(db)
	repo := purchaseRepo.NewPurchaseOrderRepository(db)

	// POST /api/orders/buy – allocate and commit a purchase order
	g.POST("/buy", func(c echo.Context) error {
		var body struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		res, err := svc.PlaceBuyOrder(body.ProductID, body.Quantity)
		if err != nil {
			if errors.Is(err, allocationService.ErrInvalidQuantity) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown product"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if !res.Accepted {
			// Business rejection: the Rejected order and its alert are committed.
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"order_id":  res.OrderID,
				"accepted":  false,
				"shortfall": res.Shortfall,
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"order_id":   res.OrderID,
			"accepted":   true,
			"total_cost": res.TotalCost,
		})
	})

	// GET /api/orders – committed purchase order headers
	g.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		orders, err := repo.List(limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})

	// GET /api/orders/:id – one header with its lines
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		po, err := repo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		lines, err := repo.LinesByOrder(po.PoID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"order": po, "lines": lines})
	})
}
