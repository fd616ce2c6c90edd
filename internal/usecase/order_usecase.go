package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen, clock: clock}
}

type OrderItemInput struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int64 `json:"quantity"`
}

type CreateOrderInput struct {
	TableLabel string
	Items      []OrderItemInput
}

type OrderItemOutput struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int64  `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	ReferenceCode string            `json:"reference_code"`
	TableLabel    string            `json:"table_label"`
	Status        string            `json:"status"`
	WaiterID      int64             `json:"waiter_id"`
	Total         int64             `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Items         []OrderItemOutput `json:"items"`
}

// CreateOrderはウェイターのメニュー選択から注文を作る。
// 数量0のペアと存在しないメニューIDは黙ってスキップする（エラーにしない）。
// 注文行と明細行は同一トランザクションで保存する。
func (u *OrderUsecase) CreateOrder(ctx context.Context, actor Actor, in CreateOrderInput) (OrderOutput, error) {
	if !Authorize(actor, OpCreateOrder) {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	table := strings.TrimSpace(in.TableLabel)
	if table == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid table label")
	}
	for _, it := range in.Items {
		if it.Quantity < 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	now := u.clock.Now()
	order := model.Order{
		ReferenceCode: u.idGen.NewID(),
		TableLabel:    table,
		Status:        model.OrderStatusPending,
		WaiterID:      actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文時点の価格をスナップショットする
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			if it.Quantity == 0 {
				continue
			}
			m, err := r.MenuItems().FindByID(ctx, it.MenuItemID)
			if err == repo.ErrNotFound {
				//メニューに無いIDはスキップ（注文全体は失敗させない）
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			items = append(items, model.OrderItem{
				MenuItemID:        m.ID,
				ItemNameSnapshot:  m.Name,
				UnitPriceSnapshot: m.Price,
				Quantity:          it.Quantity,
				CreatedAt:         now,
			})
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created := order
		created.ID = orderID
		out = toOrderOutput(created, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, actor Actor, orderID int64) (OrderOutput, error) {
	if !Authorize(actor, OpViewOrders) {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListActiveOrdersはまだ提供していない注文（ウェイターのダッシュボード用）。
func (u *OrderUsecase) ListActiveOrders(ctx context.Context, actor Actor) ([]OrderOutput, error) {
	if !Authorize(actor, OpViewOrders) {
		return []OrderOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return u.listOrders(ctx, func(ctx context.Context, r repo.TxRepos) ([]model.Order, error) {
		return r.Orders().ListActive(ctx)
	})
}

// ListAllOrdersは全注文を新しい順で返す（管理者用）。
func (u *OrderUsecase) ListAllOrders(ctx context.Context, actor Actor) ([]OrderOutput, error) {
	if !Authorize(actor, OpViewAllOrders) {
		return []OrderOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return u.listOrders(ctx, func(ctx context.Context, r repo.TxRepos) ([]model.Order, error) {
		return r.Orders().ListAll(ctx)
	})
}

func (u *OrderUsecase) listOrders(ctx context.Context, list func(context.Context, repo.TxRepos) ([]model.Order, error)) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := list(ctx, r)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// DeleteOrderは注文と明細をまとめて消す（管理者のみ）。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, actor Actor, orderID int64) error {
	if !Authorize(actor, OpDeleteOrder) {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細→注文の順でカスケード削除
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			MenuItemID: it.MenuItemID,
			Name:       it.ItemNameSnapshot,
			UnitPrice:  it.UnitPriceSnapshot,
			Quantity:   it.Quantity,
			Subtotal:   it.UnitPriceSnapshot * it.Quantity,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		ReferenceCode: o.ReferenceCode,
		TableLabel:    o.TableLabel,
		Status:        string(o.Status),
		WaiterID:      o.WaiterID,
		Total:         model.OrderTotal(items), //常に明細から計算
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         outItems,
	}
}
