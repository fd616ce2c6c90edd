package model

import "time"

// OrderItemは注文1件の明細。価格と名前は注文時点のスナップショット。
type OrderItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID           int64     `gorm:"not null;index" json:"order_id"`
	MenuItemID        int64     `gorm:"not null;index" json:"menu_item_id"`
	ItemNameSnapshot  string    `gorm:"type:varchar(100);not null" json:"item_name_snapshot"`
	UnitPriceSnapshot int64     `gorm:"not null" json:"unit_price_snapshot"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
