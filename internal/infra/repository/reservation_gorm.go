package repository

import (
	"context"
	"time"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Create(ctx context.Context, res model.Reservation) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&res).Error; err != nil {
		return 0, err
	}
	return res.ID, nil
}

func (r *ReservationGormRepository) ListUpcoming(ctx context.Context, from time.Time) ([]model.Reservation, error) {
	var items []model.Reservation
	err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Order("date asc, time asc").
		Find(&items).Error
	if err != nil {
		return []model.Reservation{}, err
	}
	return items, nil
}

func (r *ReservationGormRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("date >= ?", from).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
