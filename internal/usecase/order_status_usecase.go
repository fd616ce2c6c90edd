package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderStatusUsecase struct {
	tx    repo.TransactionManager
	clock Clock
}

func NewOrderStatusUsecase(tx repo.TransactionManager, clock Clock) *OrderStatusUsecase {
	return &OrderStatusUsecase{tx: tx, clock: clock}
}

type ChangeOrderStatusInput struct {
	Status string
}

// ChangeStatusは注文のステータスを変更する。
// 認識できない値は何もせず成功扱い（updated_atも触らない）。
// 認識できる値なら前後関係を問わず無条件で設定する。SERVED→PENDINGも可。
func (u *OrderStatusUsecase) ChangeStatus(ctx context.Context, actor Actor, orderID int64, in ChangeOrderStatusInput) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	target := strings.TrimSpace(in.Status)

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//存在確認が先（元の画面遷移と同じ順）
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !Authorize(actor, OpChangeOrderStatus) {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		if !model.IsValidOrderStatus(target) {
			//no-op
			return nil
		}

		err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(target), u.clock.Now())
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
