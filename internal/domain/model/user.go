package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID             int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;not null" json:"-"`
	WhatsappNumber *string   `gorm:"type:varchar(32)" json:"whatsapp_number"`
	Role           Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
