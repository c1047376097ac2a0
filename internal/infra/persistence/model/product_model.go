package model

// ProductModel mirrors the 'products' table. Column names follow the wire
// format of the API (product_name, number, delivery).
type ProductModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Username    string  `gorm:"type:varchar(100);not null;index"`
	ProductName string  `gorm:"column:product_name;type:varchar(255);not null"`
	Price       float64 `gorm:"not null"`
	Number      int     `gorm:"not null"`
	Delivery    string  `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
