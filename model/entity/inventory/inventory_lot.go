package inventory

// InventoryLot represents the inventory table. Lots for the same
// (warehouse, product) pair are distinguished by the catalog entry they were
// purchased under; allocations merge additively on that key.
type InventoryLot struct {
	InventoryID uint `gorm:"column:inventory_id;primaryKey;autoIncrement" json:"inventory_id"`
	WarehouseID uint `gorm:"column:warehouse_id;not null;uniqueIndex:idx_lot_unq,priority:1" json:"warehouse_id"`
	ProductID   uint `gorm:"column:product_id;not null;uniqueIndex:idx_lot_unq,priority:2" json:"product_id"`
	CatalogID   uint `gorm:"column:catalog_id;not null;uniqueIndex:idx_lot_unq,priority:3" json:"catalog_id"`
	Quantity    int  `gorm:"column:quantity;not null;default:0" json:"quantity"`
	ShelfSpace  int  `gorm:"column:shelf_space;not null;default:0" json:"shelf_space"`
}

func (InventoryLot) TableName() string {
	return "inventory"
}
