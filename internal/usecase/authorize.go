package usecase

import (
	"time"

	"app/internal/domain/model"
)

// Actorはリクエストを実行している認証済みの本人。
// グローバルなセッション状態は持たず、毎回引数で渡す。
type Actor struct {
	UserID int64
	Role   model.Role
}

type Operation string

const (
	OpCreateOrder       Operation = "create_order"
	OpViewOrders        Operation = "view_orders"
	OpViewAllOrders     Operation = "view_all_orders"
	OpChangeOrderStatus Operation = "change_order_status"
	OpDeleteOrder       Operation = "delete_order"
	OpViewSalesReport   Operation = "view_sales_report"
	OpViewDashboard     Operation = "view_dashboard"
	OpManageMenu        Operation = "manage_menu"
	OpCreateReservation Operation = "create_reservation"
	OpViewReservations  Operation = "view_reservations"
)

// (role, operation)の許可表。
// ハンドラごとに散らばりがちなrole文字列比較はここに集約する。
var policy = map[model.Role]map[Operation]bool{
	model.RoleAdmin: {
		OpViewOrders:        true,
		OpViewAllOrders:     true,
		OpChangeOrderStatus: true,
		OpDeleteOrder:       true,
		OpViewSalesReport:   true,
		OpViewDashboard:     true,
		OpManageMenu:        true,
		OpCreateReservation: true,
		OpViewReservations:  true,
	},
	model.RoleWaiter: {
		OpCreateOrder:       true,
		OpViewOrders:        true,
		OpChangeOrderStatus: true,
		OpCreateReservation: true,
	},
	model.RoleClient: {
		OpCreateReservation: true,
	},
}

func Authorize(actor Actor, op Operation) bool {
	ops, ok := policy[actor.Role]
	if !ok {
		return false
	}
	return ops[op]
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}
