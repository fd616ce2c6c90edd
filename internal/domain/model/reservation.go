package model

import "time"

type Reservation struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date"`
	Time         string    `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	PartySize    int       `gorm:"not null" json:"party_size"`
	ClientID     *int64    `gorm:"index" json:"client_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
