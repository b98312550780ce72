package inventory

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventoryEntity "inventory.GO/model/entity/inventory"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// LotsByProduct returns all lots of a product ordered by lot id.
func (r *InventoryRepository) LotsByProduct(productID uint) ([]inventoryEntity.InventoryLot, error) {
	var lots []inventoryEntity.InventoryLot
	err := r.db.Where("product_id = ?", productID).Order("inventory_id ASC").Find(&lots).Error
	return lots, err
}

// LotsByProductForUpdate is LotsByProduct with row locks for the sell path.
// FOR UPDATE applies on MySQL only; sqlite (tests) is single-writer.
func (r *InventoryRepository) LotsByProductForUpdate(productID uint) ([]inventoryEntity.InventoryLot, error) {
	tx := r.db
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var lots []inventoryEntity.InventoryLot
	err := tx.Where("product_id = ?", productID).Order("inventory_id ASC").Find(&lots).Error
	return lots, err
}

// TotalQuantityByProduct sums on-hand units of a product across all lots.
func (r *InventoryRepository) TotalQuantityByProduct(productID uint) (int, error) {
	var total int
	err := r.db.Model(&inventoryEntity.InventoryLot{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// MergeLot adds quantity and shelf space to the lot keyed by
// (warehouse, product, catalog), creating it when absent. Runs find-then-write
// so the additive merge stays portable across MySQL and sqlite; callers hold a
// transaction, which serializes the two steps.
func (r *InventoryRepository) MergeLot(warehouseID, productID, catalogID uint, quantity, shelfSpace int) error {
	var lot inventoryEntity.InventoryLot
	err := r.db.
		Where("warehouse_id = ? AND product_id = ? AND catalog_id = ?", warehouseID, productID, catalogID).
		First(&lot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&inventoryEntity.InventoryLot{
			WarehouseID: warehouseID,
			ProductID:   productID,
			CatalogID:   catalogID,
			Quantity:    quantity,
			ShelfSpace:  shelfSpace,
		}).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&inventoryEntity.InventoryLot{}).
		Where("inventory_id = ?", lot.InventoryID).
		UpdateColumns(map[string]interface{}{
			"quantity":    gorm.Expr("quantity + ?", quantity),
			"shelf_space": gorm.Expr("shelf_space + ?", shelfSpace),
		}).Error
}

// DrainLot removes quantity and shelf space from a lot. The guard keeps lot
// quantities from ever going negative; gorm.ErrRecordNotFound means the lot
// no longer held enough stock.
func (r *InventoryRepository) DrainLot(inventoryID uint, quantity, shelfSpace int) error {
	res := r.db.Model(&inventoryEntity.InventoryLot{}).
		Where("inventory_id = ? AND quantity >= ?", inventoryID, quantity).
		UpdateColumns(map[string]interface{}{
			"quantity":    gorm.Expr("quantity - ?", quantity),
			"shelf_space": gorm.Expr("shelf_space - ?", shelfSpace),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SnapshotRow is one row of the inventory read model polled by the UI layer.
type SnapshotRow struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	WarehouseID uint   `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
	ShelfSpace  int    `json:"shelf_space"`
	CatalogID   uint   `json:"catalog_id"`
}

// Snapshot returns the committed inventory joined with product names.
func (r *InventoryRepository) Snapshot() ([]SnapshotRow, error) {
	const query = `
		SELECT i.product_id, p.name AS product_name, i.warehouse_id,
		       i.quantity, i.shelf_space, i.catalog_id
		FROM inventory i
		JOIN products p ON p.product_id = i.product_id
		ORDER BY i.product_id, i.warehouse_id, i.catalog_id`

	var rows []SnapshotRow
	err := r.db.Raw(query).Scan(&rows).Error
	return rows, err
}
