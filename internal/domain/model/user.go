package model

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleWaiter Role = "WAITER"
	RoleClient Role = "CLIENT"
)

// 登録で受け付けるroleか
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleWaiter, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	TokenVersion int       `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
