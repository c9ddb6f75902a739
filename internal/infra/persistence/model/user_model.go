// Package model holds the GORM persistence structs. They mirror tables and
// never leave the infrastructure layer; repositories map them to domain
// entities at the boundary.
package model

import "time"

// UserModel mirrors the 'users' table. The email is the primary key: users
// are identified by their lowercase-normalized address, never by a surrogate
// id.
type UserModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	Username     string `gorm:"type:varchar(20);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:UserEmail;references:Email"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
