package model

import "time"

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "PENDING"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusServed        OrderStatus = "SERVED"
)

// 注文ステータスとして認識できる値か
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusInPreparation, OrderStatusServed:
		return true
	}
	return false
}

type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceCode string      `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference_code"`
	TableLabel    string      `gorm:"type:varchar(20);not null" json:"table_label"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	WaiterID      int64       `gorm:"not null;index" json:"waiter_id"`
	CreatedAt     time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

// OrderTotalは明細から合計を毎回計算する。合計カラムは持たない。
func OrderTotal(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPriceSnapshot * it.Quantity
	}
	return total
}
