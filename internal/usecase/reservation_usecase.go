package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReservationUsecase struct {
	reservations repo.ReservationRepository
	clock        Clock
}

func NewReservationUsecase(reservations repo.ReservationRepository, clock Clock) *ReservationUsecase {
	return &ReservationUsecase{reservations: reservations, clock: clock}
}

type ReservationInput struct {
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	PartySize    int    `json:"party_size"`
}

type ReservationOutput struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	ClientID     *int64 `json:"client_id,omitempty"`
}

func (u *ReservationUsecase) CreateReservation(ctx context.Context, actor Actor, in ReservationInput) (ReservationOutput, error) {
	if !Authorize(actor, OpCreateReservation) {
		return ReservationOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return ReservationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customer name")
	}
	day, err := time.ParseInLocation("2006-01-02", in.Date, time.UTC)
	if err != nil {
		return ReservationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return ReservationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid time")
	}
	if in.PartySize < 1 {
		return ReservationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid party size")
	}

	clientID := actor.UserID
	res := model.Reservation{
		CustomerName: name,
		Date:         day,
		Time:         in.Time,
		PartySize:    in.PartySize,
		ClientID:     &clientID,
		CreatedAt:    u.clock.Now(),
	}

	id, err := u.reservations.Create(ctx, res)
	if err != nil {
		return ReservationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ReservationOutput{
		ID:           id,
		CustomerName: name,
		Date:         in.Date,
		Time:         in.Time,
		PartySize:    in.PartySize,
		ClientID:     &clientID,
	}, nil
}

// ListUpcomingは今日以降の予約（管理者用）。
func (u *ReservationUsecase) ListUpcoming(ctx context.Context, actor Actor) ([]ReservationOutput, error) {
	if !Authorize(actor, OpViewReservations) {
		return []ReservationOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	today := u.clock.Now().UTC().Truncate(24 * time.Hour)
	items, err := u.reservations.ListUpcoming(ctx, today)
	if err != nil {
		return []ReservationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ReservationOutput, 0, len(items))
	for _, r := range items {
		outs = append(outs, ReservationOutput{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Date:         r.Date.Format("2006-01-02"),
			Time:         r.Time,
			PartySize:    r.PartySize,
			ClientID:     r.ClientID,
		})
	}
	return outs, nil
}
