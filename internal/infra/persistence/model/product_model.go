package model

import "time"

// ProductModel mirrors the 'products' table. Price is stored as a
// decimal(10,2) column; availability is derived from the quantity and never
// stored.
type ProductModel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Price      float64 `gorm:"type:decimal(10,2);not null"`
	Quantity   int     `gorm:"not null"`
	CategoryID uint    `gorm:"not null;index"`
	UserEmail  string  `gorm:"type:varchar(255);not null;index"`
	CreatedAt  time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	User     *UserModel     `gorm:"foreignKey:UserEmail;references:Email"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
