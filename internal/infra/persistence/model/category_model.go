package model

import "time"

// CategoryModel mirrors the 'categories' table. The unique index on the name
// backs the case-sensitive uniqueness rule; concurrent inserts that slip past
// validation fail here at commit time.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:varchar(255);not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
