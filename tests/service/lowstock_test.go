package servicetest

import (
	"strings"
	"testing"

	"inventory.GO/cron/jobs"
	entity "inventory.GO/model/entity"
	inventoryEntity "inventory.GO/model/entity/inventory"
)

func TestLowStockJob_RecordsAlerts(t *testing.T) {
	db := testDB(t)
	db.Create(&entity.Product{Name: "scarce", SafeStockLevel: 10, ShelfSpace: 1})
	db.Create(&entity.Product{Name: "plenty", SafeStockLevel: 5, ShelfSpace: 1})
	db.Create(&inventoryEntity.InventoryLot{WarehouseID: 1, ProductID: 1, CatalogID: 1, Quantity: 3, ShelfSpace: 3})
	db.Create(&inventoryEntity.InventoryLot{WarehouseID: 1, ProductID: 2, CatalogID: 2, Quantity: 9, ShelfSpace: 9})

	jobs.SetDB(db)
	defer jobs.SetDB(nil)
	jobs.LowStockJob()

	var alerts []entity.Alert
	db.Find(&alerts)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0].EntityType != entity.AlertEntityProduct || alerts[0].EntityID != 1 {
		t.Errorf("alert = %+v, want Product alert for product 1", alerts[0])
	}
	if !strings.Contains(alerts[0].Message, "Restock needed: 7") {
		t.Errorf("message = %q, want restock hint of 7", alerts[0].Message)
	}
}

func TestLowStockJob_NoDatabase(t *testing.T) {
	jobs.SetDB(nil)
	// must not panic
	jobs.LowStockJob()
}
