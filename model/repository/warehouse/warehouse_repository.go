package warehouse

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "inventory.GO/model/entity"
	inventoryEntity "inventory.GO/model/entity/inventory"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

// Capacity is the point-in-time capacity view of one warehouse. Occupied is
// derived from inventory lots (quantity x product shelf space), never stored.
type Capacity struct {
	WarehouseID uint `json:"warehouse_id"`
	Total       int  `json:"total"`
	Occupied    int  `json:"occupied"`
}

// Free returns the remaining shelf-space units, never negative.
func (c Capacity) Free() int {
	if free := c.Total - c.Occupied; free > 0 {
		return free
	}
	return 0
}

// CapacitiesByFreeDesc returns every warehouse with its derived occupancy,
// ordered by free capacity descending, ties broken by warehouse id.
func (r *WarehouseRepository) CapacitiesByFreeDesc() ([]Capacity, error) {
	const query = `
		SELECT w.warehouse_id AS warehouse_id,
		       w.capacity AS total,
		       COALESCE(SUM(i.quantity * p.shelf_space), 0) AS occupied
		FROM warehouses w
		LEFT JOIN inventory i ON i.warehouse_id = w.warehouse_id
		LEFT JOIN products p ON p.product_id = i.product_id
		GROUP BY w.warehouse_id, w.capacity
		ORDER BY (w.capacity - COALESCE(SUM(i.quantity * p.shelf_space), 0)) DESC, w.warehouse_id ASC`

	var rows []Capacity
	err := r.db.Raw(query).Scan(&rows).Error
	return rows, err
}

// CapacitiesByFreeDescForUpdate is the allocation-transaction variant of
// CapacitiesByFreeDesc. On MySQL the warehouse and inventory rows are read
// FOR UPDATE: locking reads return the latest committed rows instead of the
// transaction's consistent snapshot, so a buy that blocked behind another
// buy's commit sees the lots that commit just wrote rather than re-consuming
// the same free capacity. Occupancy is summed from the lots' own shelf_space
// column (kept additively by MergeLot/DrainLot) because MySQL rejects
// locking reads combined with aggregation. sqlite (tests) is single-writer
// and rejects FOR UPDATE syntax.
func (r *WarehouseRepository) CapacitiesByFreeDescForUpdate() ([]Capacity, error) {
	tx := r.db
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var warehouses []entity.Warehouse
	if err := tx.Order("warehouse_id ASC").Find(&warehouses).Error; err != nil {
		return nil, err
	}
	var lots []inventoryEntity.InventoryLot
	if err := tx.Find(&lots).Error; err != nil {
		return nil, err
	}

	occupied := make(map[uint]int, len(warehouses))
	for _, lot := range lots {
		occupied[lot.WarehouseID] += lot.ShelfSpace
	}
	caps := make([]Capacity, 0, len(warehouses))
	for _, w := range warehouses {
		caps = append(caps, Capacity{WarehouseID: w.WarehouseID, Total: w.Capacity, Occupied: occupied[w.WarehouseID]})
	}
	sort.SliceStable(caps, func(i, j int) bool {
		if caps[i].Free() != caps[j].Free() {
			return caps[i].Free() > caps[j].Free()
		}
		return caps[i].WarehouseID < caps[j].WarehouseID
	})
	return caps, nil
}

// FreeCapacity returns the free shelf-space units of a single warehouse.
func (r *WarehouseRepository) FreeCapacity(warehouseID uint) (int, error) {
	const query = `
		SELECT w.capacity - COALESCE(SUM(i.quantity * p.shelf_space), 0)
		FROM warehouses w
		LEFT JOIN inventory i ON i.warehouse_id = w.warehouse_id
		LEFT JOIN products p ON p.product_id = i.product_id
		WHERE w.warehouse_id = ?
		GROUP BY w.capacity`

	var free int
	if err := r.db.Raw(query, warehouseID).Scan(&free).Error; err != nil {
		return 0, err
	}
	if free < 0 {
		free = 0
	}
	return free, nil
}

// Count returns the number of warehouses.
func (r *WarehouseRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Warehouse{}).Count(&n).Error
	return n, err
}
