package entity

// Supplier represents the suppliers table.
type Supplier struct {
	SupplierID  uint   `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ContactInfo string `gorm:"column:contact_info;type:varchar(255)" json:"contact_info,omitempty"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
