package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type ReservationRepository interface {
	Create(ctx context.Context, r model.Reservation) (int64, error)
	//from以降の予約（日付、時刻順）
	ListUpcoming(ctx context.Context, from time.Time) ([]model.Reservation, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
}
