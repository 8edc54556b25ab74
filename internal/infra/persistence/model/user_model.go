// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Favorites []FavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteModel mirrors the 'favorites' table. The composite primary key
// (user_id, country_code) makes duplicate favorites impossible at the store
// level and lets inserts be idempotent via ON CONFLICT DO NOTHING.
type FavoriteModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CountryCode string    `gorm:"type:varchar(3);primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
