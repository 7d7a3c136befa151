package models

import "github.com/angelmondragon/multistore-admin/pkg/types"

// User is a marketplace account. Vendors are users that own a store.
type User struct {
	ID           string          `gorm:"column:id;primaryKey"`
	FirstName    string          `gorm:"column:first_name;not null"`
	LastName     string          `gorm:"column:last_name;not null"`
	Email        string          `gorm:"column:email;not null"`
	Contact      string          `gorm:"column:contact;not null"`
	PasswordHash string          `gorm:"column:password_hash;not null"`
	CreatedAt    types.Timestamp `gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
