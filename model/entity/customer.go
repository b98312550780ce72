package entity

// Customer represents the customers table.
type Customer struct {
	CustomerID  uint   `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ContactInfo string `gorm:"column:contact_info;type:varchar(255)" json:"contact_info,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}
