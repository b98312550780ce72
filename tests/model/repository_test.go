package modeltest

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "inventory.GO/model/entity"
	inventoryEntity "inventory.GO/model/entity/inventory"
	purchaseEntity "inventory.GO/model/entity/purchase"
	salesEntity "inventory.GO/model/entity/sales"
	alertRepo "inventory.GO/model/repository/alert"
	catalogRepo "inventory.GO/model/repository/catalog"
	inventoryRepo "inventory.GO/model/repository/inventory"
	purchaseRepo "inventory.GO/model/repository/purchase"
	warehouseRepo "inventory.GO/model/repository/warehouse"
)

func testDB(t *testing.T) *gorm.DB {
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

func TestCatalogRepository_OffersByProduct_PriceOrdered(t *testing.T) {
	db := testDB(t)
	repo := catalogRepo.NewCatalogRepository(db)

	db.Create(&entity.CatalogEntry{SupplierID: 1, ProductID: 1, Price: decimal.NewFromInt(9), MaxQuantity: 5})
	db.Create(&entity.CatalogEntry{SupplierID: 2, ProductID: 1, Price: decimal.NewFromInt(3), MaxQuantity: 5})
	db.Create(&entity.CatalogEntry{SupplierID: 3, ProductID: 1, Price: decimal.NewFromInt(3), MaxQuantity: 5})
	db.Create(&entity.CatalogEntry{SupplierID: 4, ProductID: 2, Price: decimal.NewFromInt(1), MaxQuantity: 5})

	offers, err := repo.OffersByProduct(1)
	if err != nil {
		t.Fatalf("OffersByProduct: %v", err)
	}
	if len(offers) != 3 {
		t.Fatalf("len(offers) = %d, want 3", len(offers))
	}
	// cheapest first, price ties broken by catalog id
	if offers[0].SupplierID != 2 || offers[1].SupplierID != 3 || offers[2].SupplierID != 1 {
		t.Errorf("order = %d,%d,%d, want 2,3,1", offers[0].SupplierID, offers[1].SupplierID, offers[2].SupplierID)
	}
}

func TestCatalogRepository_TotalSupply(t *testing.T) {
	db := testDB(t)
	repo := catalogRepo.NewCatalogRepository(db)

	db.Create(&entity.CatalogEntry{SupplierID: 1, ProductID: 1, Price: decimal.NewFromInt(2), MaxQuantity: 30})
	db.Create(&entity.CatalogEntry{SupplierID: 2, ProductID: 1, Price: decimal.NewFromInt(4), MaxQuantity: 20})

	total, err := repo.TotalSupply(1)
	if err != nil {
		t.Fatalf("TotalSupply: %v", err)
	}
	if total != 50 {
		t.Errorf("TotalSupply = %d, want 50", total)
	}
}

func TestWarehouseRepository_CapacitiesByFreeDesc(t *testing.T) {
	db := testDB(t)
	repo := warehouseRepo.NewWarehouseRepository(db)

	db.Create(&entity.Product{Name: "boxed", ShelfSpace: 2})
	db.Create(&entity.Warehouse{Name: "A", Capacity: 100})
	db.Create(&entity.Warehouse{Name: "B", Capacity: 300})
	// warehouse A holds 10 units x shelf space 2 = 20 occupied
	db.Create(&inventoryEntity.InventoryLot{WarehouseID: 1, ProductID: 1, CatalogID: 1, Quantity: 10, ShelfSpace: 20})

	caps, err := repo.CapacitiesByFreeDesc()
	if err != nil {
		t.Fatalf("CapacitiesByFreeDesc: %v", err)
	}
	if len(caps) != 2 {
		t.Fatalf("len(caps) = %d, want 2", len(caps))
	}
	// B free=300 comes before A free=80
	if caps[0].WarehouseID != 2 || caps[0].Free() != 300 {
		t.Errorf("caps[0] = %+v, want warehouse 2 free 300", caps[0])
	}
	if caps[1].WarehouseID != 1 || caps[1].Occupied != 20 || caps[1].Free() != 80 {
		t.Errorf("caps[1] = %+v, want warehouse 1 occupied 20 free 80", caps[1])
	}
}

func TestWarehouseRepository_CapacitiesByFreeDescForUpdate(t *testing.T) {
	db := testDB(t)
	repo := warehouseRepo.NewWarehouseRepository(db)

	db.Create(&entity.Product{Name: "boxed", ShelfSpace: 2})
	db.Create(&entity.Warehouse{Name: "A", Capacity: 100})
	db.Create(&entity.Warehouse{Name: "B", Capacity: 300})
	db.Create(&entity.Warehouse{Name: "C", Capacity: 300})
	db.Create(&inventoryEntity.InventoryLot{WarehouseID: 1, ProductID: 1, CatalogID: 1, Quantity: 10, ShelfSpace: 20})

	caps, err := repo.CapacitiesByFreeDescForUpdate()
	if err != nil {
		t.Fatalf("CapacitiesByFreeDescForUpdate: %v", err)
	}
	if len(caps) != 3 {
		t.Fatalf("len(caps) = %d, want 3", len(caps))
	}
	// free desc, ties broken by warehouse id: B(300), C(300), A(80)
	if caps[0].WarehouseID != 2 || caps[1].WarehouseID != 3 || caps[2].WarehouseID != 1 {
		t.Errorf("order = %d,%d,%d, want 2,3,1", caps[0].WarehouseID, caps[1].WarehouseID, caps[2].WarehouseID)
	}
	if caps[2].Occupied != 20 || caps[2].Free() != 80 {
		t.Errorf("caps[2] = %+v, want occupied 20 free 80", caps[2])
	}

	// must agree with the non-locking read model
	snapshot, err := repo.CapacitiesByFreeDesc()
	if err != nil {
		t.Fatalf("CapacitiesByFreeDesc: %v", err)
	}
	for i := range caps {
		if caps[i] != snapshot[i] {
			t.Errorf("row %d: locking read %+v != snapshot %+v", i, caps[i], snapshot[i])
		}
	}
}

func TestWarehouseRepository_FreeCapacity(t *testing.T) {
	db := testDB(t)
	repo := warehouseRepo.NewWarehouseRepository(db)

	db.Create(&entity.Product{Name: "p", ShelfSpace: 5})
	db.Create(&entity.Warehouse{Name: "A", Capacity: 60})
	db.Create(&inventoryEntity.InventoryLot{WarehouseID: 1, ProductID: 1, CatalogID: 1, Quantity: 4, ShelfSpace: 20})

	free, err := repo.FreeCapacity(1)
	if err != nil {
		t.Fatalf("FreeCapacity: %v", err)
	}
	if free != 40 {
		t.Errorf("FreeCapacity = %d, want 40", free)
	}
}

func TestInventoryRepository_MergeLot(t *testing.T) {
	db := testDB(t)
	repo := inventoryRepo.NewInventoryRepository(db)

	if err := repo.MergeLot(1, 2, 3, 10, 20); err != nil {
		t.Fatalf("MergeLot create: %v", err)
	}
	if err := repo.MergeLot(1, 2, 3, 5, 10); err != nil {
		t.Fatalf("MergeLot merge: %v", err)
	}
	// different offer: separate lot
	if err := repo.MergeLot(1, 2, 4, 7, 14); err != nil {
		t.Fatalf("MergeLot second lot: %v", err)
	}

	lots, err := repo.LotsByProduct(2)
	if err != nil {
		t.Fatalf("LotsByProduct: %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("len(lots) = %d, want 2", len(lots))
	}
	if lots[0].Quantity != 15 || lots[0].ShelfSpace != 30 {
		t.Errorf("merged lot = %+v, want quantity 15 shelf space 30", lots[0])
	}
	if lots[1].Quantity != 7 {
		t.Errorf("second lot = %+v, want quantity 7", lots[1])
	}

	total, err := repo.TotalQuantityByProduct(2)
	if err != nil {
		t.Fatalf("TotalQuantityByProduct: %v", err)
	}
	if total != 22 {
		t.Errorf("TotalQuantityByProduct = %d, want 22", total)
	}
}

func TestInventoryRepository_DrainLot(t *testing.T) {
	db := testDB(t)
	repo := inventoryRepo.NewInventoryRepository(db)

	if err := repo.MergeLot(1, 1, 1, 10, 10); err != nil {
		t.Fatalf("MergeLot: %v", err)
	}
	if err := repo.DrainLot(1, 4, 4); err != nil {
		t.Fatalf("DrainLot: %v", err)
	}
	lots, _ := repo.LotsByProduct(1)
	if lots[0].Quantity != 6 {
		t.Errorf("quantity = %d, want 6", lots[0].Quantity)
	}

	// draining below zero is refused
	if err := repo.DrainLot(1, 7, 7); err == nil {
		t.Error("DrainLot beyond stock: want error")
	}
	lots, _ = repo.LotsByProduct(1)
	if lots[0].Quantity != 6 {
		t.Errorf("quantity after refused drain = %d, want 6", lots[0].Quantity)
	}
}

func TestPurchaseOrderRepository_Lifecycle(t *testing.T) {
	db := testDB(t)
	repo := purchaseRepo.NewPurchaseOrderRepository(db)

	po := &purchaseEntity.PurchaseOrder{SupplierID: 1, OrderDate: time.Now(), Status: purchaseEntity.StatusPending, TotalCost: decimal.Zero}
	if err := repo.Create(po); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if po.PoID == 0 {
		t.Fatal("PoID not set after Create")
	}

	lines := []purchaseEntity.PurchaseOrderLine{
		{PoID: po.PoID, CatalogID: 1, Quantity: 30, UnitCost: decimal.NewFromInt(5)},
		{PoID: po.PoID, CatalogID: 2, Quantity: 20, UnitCost: decimal.NewFromInt(8)},
	}
	if err := repo.CreateLines(lines); err != nil {
		t.Fatalf("CreateLines: %v", err)
	}
	if err := repo.MarkCommitted(po.PoID, decimal.NewFromInt(310)); err != nil {
		t.Fatalf("MarkCommitted: %v", err)
	}

	found, err := repo.FindByID(po.PoID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Status != purchaseEntity.StatusAddedToInventory {
		t.Errorf("Status = %q, want AddedToInventory", found.Status)
	}
	if !found.TotalCost.Equal(decimal.NewFromInt(310)) {
		t.Errorf("TotalCost = %s, want 310", found.TotalCost)
	}

	got, err := repo.LinesByOrder(po.PoID)
	if err != nil {
		t.Fatalf("LinesByOrder: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(lines) = %d, want 2", len(got))
	}
}

func TestPurchaseOrderRepository_MarkRejected_OnlyPending(t *testing.T) {
	db := testDB(t)
	repo := purchaseRepo.NewPurchaseOrderRepository(db)

	po := &purchaseEntity.PurchaseOrder{SupplierID: 1, OrderDate: time.Now(), Status: purchaseEntity.StatusPending}
	if err := repo.Create(po); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.MarkRejected(po.PoID); err != nil {
		t.Fatalf("MarkRejected: %v", err)
	}
	// status transitions exactly once; a second transition is a no-op
	if err := repo.MarkCommitted(po.PoID, decimal.NewFromInt(99)); err != nil {
		t.Fatalf("MarkCommitted: %v", err)
	}
	found, _ := repo.FindByID(po.PoID)
	if found.Status != purchaseEntity.StatusRejected {
		t.Errorf("Status = %q, want Rejected", found.Status)
	}
}

func TestAlertRepository_RecordAndListSince(t *testing.T) {
	db := testDB(t)
	repo := alertRepo.NewAlertRepository(db)

	if err := repo.Record(entity.AlertEntityProduct, 7, "first", time.Now()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := repo.Record(entity.AlertEntityPurchaseOrder, 9, "second", time.Now()); err != nil {
		t.Fatalf("Record: %v", err)
	}

	all, err := repo.ListSince(0)
	if err != nil {
		t.Fatalf("ListSince(0): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(alerts) = %d, want 2", len(all))
	}

	tail, err := repo.ListSince(all[0].AlertID)
	if err != nil {
		t.Fatalf("ListSince: %v", err)
	}
	if len(tail) != 1 || tail[0].Message != "second" {
		t.Errorf("tail = %+v, want only the second alert", tail)
	}
}
