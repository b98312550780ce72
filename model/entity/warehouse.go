package entity

// Warehouse represents the warehouses table. Capacity is expressed in
// shelf-space units; occupied capacity is derived from inventory, not stored.
type Warehouse struct {
	WarehouseID uint   `gorm:"column:warehouse_id;primaryKey;autoIncrement" json:"warehouse_id"`
	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Location    string `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	Capacity    int    `gorm:"column:capacity;not null" json:"capacity"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}
