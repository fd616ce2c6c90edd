package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//全件（新しい順）
	ListAll(ctx context.Context) ([]model.Order, error)
	//未提供（SERVED以外）の注文
	ListActive(ctx context.Context) ([]model.Order, error)
	//created_atが [from, to) に入る注文（売上レポート用）
	ListByCreatedRange(ctx context.Context, from time.Time, to time.Time) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, updatedAt time.Time) error
	Delete(ctx context.Context, orderID int64) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}
