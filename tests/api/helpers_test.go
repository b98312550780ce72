package apitest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	alertsApi "inventory.GO/api/alerts"
	inventoryApi "inventory.GO/api/inventory"
	purchaseApi "inventory.GO/api/purchase"
	salesApi "inventory.GO/api/sales"
	entity "inventory.GO/model/entity"
	inventoryEntity "inventory.GO/model/entity/inventory"
	purchaseEntity "inventory.GO/model/entity/purchase"
	salesEntity "inventory.GO/model/entity/sales"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func apiTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.Supplier{},
		&entity.CatalogEntry{},
		&entity.Warehouse{},
		&entity.Customer{},
		&entity.Alert{},
		&inventoryEntity.InventoryLot{},
		&purchaseEntity.PurchaseOrder{},
		&purchaseEntity.PurchaseOrderLine{},
		&salesEntity.SalesOrder{},
		&salesEntity.SalesOrderLine{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func apiTestServer(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()
	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		return user == testUser && pass == testPass, nil
	}))
	purchaseApi.RegisterPurchaseRoutes(apiGroup, db)
	salesApi.RegisterSalesRoutes(apiGroup, db)
	alertsApi.RegisterAlertRoutes(apiGroup, db)
	inventoryApi.RegisterInventoryRoutes(apiGroup, db)
	return e
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func doJSON(e *echo.Echo, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
