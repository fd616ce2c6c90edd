package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReportUsecase struct {
	tx           repo.TransactionManager
	reservations repo.ReservationRepository
	clock        Clock
}

func NewReportUsecase(tx repo.TransactionManager, reservations repo.ReservationRepository, clock Clock) *ReportUsecase {
	return &ReportUsecase{tx: tx, reservations: reservations, clock: clock}
}

type SalesReportOutput struct {
	Date       string        `json:"date"`
	OrderCount int           `json:"order_count"`
	TotalSales int64         `json:"total_sales"`
	Orders     []OrderOutput `json:"orders"`
}

// DailySalesは指定日に作成された注文の売上を集計する。
// 日付はタイムゾーンなし扱いで、UTCの1日[00:00, 24:00)で切る。
// 該当なしはエラーではなく件数0・合計0を返す。
func (u *ReportUsecase) DailySales(ctx context.Context, actor Actor, dateStr string) (SalesReportOutput, error) {
	if !Authorize(actor, OpViewSalesReport) {
		return SalesReportOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return SalesReportOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date")
	}
	from := day
	to := day.AddDate(0, 0, 1)

	out := SalesReportOutput{
		Date:   dateStr,
		Orders: []OrderOutput{},
	}

	txErr := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByCreatedRange(ctx, from, to)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			oo := toOrderOutput(o, items)
			out.Orders = append(out.Orders, oo)
			out.TotalSales += oo.Total
		}
		out.OrderCount = len(orders)
		return nil
	})

	if txErr != nil {
		return SalesReportOutput{}, txErr
	}
	return out, nil
}

type DashboardOutput struct {
	TotalOrders          int64 `json:"total_orders"`
	PendingOrders        int64 `json:"pending_orders"`
	UpcomingReservations int64 `json:"upcoming_reservations"`
}

// Dashboardは管理者トップの集計値。
func (u *ReportUsecase) Dashboard(ctx context.Context, actor Actor) (DashboardOutput, error) {
	if !Authorize(actor, OpViewDashboard) {
		return DashboardOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var out DashboardOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		total, err := r.Orders().Count(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		pending, err := r.Orders().CountByStatus(ctx, model.OrderStatusPending)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.TotalOrders = total
		out.PendingOrders = pending
		return nil
	})
	if err != nil {
		return DashboardOutput{}, err
	}

	//今日以降の予約件数
	today := u.clock.Now().UTC().Truncate(24 * time.Hour)
	upcoming, err := u.reservations.CountUpcoming(ctx, today)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.UpcomingReservations = upcoming

	return out, nil
}
