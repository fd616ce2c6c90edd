package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReservationUsecaseForTest(reservations *ReservationRepoMock) *ReservationUsecase {
	return NewReservationUsecase(reservations, &fixedClock{t: testNow})
}

// クライアント本人のIDが予約に紐づく
func TestReservationUsecase_Create_LinksClientID(t *testing.T) {
	reservations := new(ReservationRepoMock)
	uc := newReservationUsecaseForTest(reservations)

	reservations.On("Create", mock.Anything, mock.MatchedBy(func(r model.Reservation) bool {
		return r.CustomerName == "Ana" &&
			r.Time == "19:30" &&
			r.PartySize == 4 &&
			r.ClientID != nil && *r.ClientID == 3
	})).Return(int64(11), nil)

	out, err := uc.CreateReservation(context.Background(), Actor{UserID: 3, Role: model.RoleClient}, ReservationInput{
		CustomerName: "Ana",
		Date:         "2026-09-01",
		Time:         "19:30",
		PartySize:    4,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
	assert.Equal(t, "2026-09-01", out.Date)
}

func TestReservationUsecase_Create_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   ReservationInput
	}{
		{"名前が空", ReservationInput{CustomerName: " ", Date: "2026-09-01", Time: "19:30", PartySize: 2}},
		{"日付の形式が不正", ReservationInput{CustomerName: "Ana", Date: "01/09/2026", Time: "19:30", PartySize: 2}},
		{"時刻の形式が不正", ReservationInput{CustomerName: "Ana", Date: "2026-09-01", Time: "7pm", PartySize: 2}},
		{"人数0", ReservationInput{CustomerName: "Ana", Date: "2026-09-01", Time: "19:30", PartySize: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reservations := new(ReservationRepoMock)
			uc := newReservationUsecaseForTest(reservations)

			_, err := uc.CreateReservation(context.Background(), Actor{UserID: 3, Role: model.RoleClient}, tc.in)

			assertHTTPStatus(t, err, http.StatusBadRequest)
			reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

// 予約一覧は管理者限定
func TestReservationUsecase_ListUpcoming_ForbiddenForClient(t *testing.T) {
	reservations := new(ReservationRepoMock)
	uc := newReservationUsecaseForTest(reservations)

	_, err := uc.ListUpcoming(context.Background(), Actor{UserID: 3, Role: model.RoleClient})

	assertHTTPStatus(t, err, http.StatusForbidden)
	reservations.AssertNotCalled(t, "ListUpcoming", mock.Anything, mock.Anything)
}

func TestReservationUsecase_ListUpcoming(t *testing.T) {
	reservations := new(ReservationRepoMock)
	uc := newReservationUsecaseForTest(reservations)

	clientID := int64(3)
	reservations.On("ListUpcoming", mock.Anything, mock.Anything).Return([]model.Reservation{
		{ID: 11, CustomerName: "Ana", Date: testNow, Time: "19:30", PartySize: 4, ClientID: &clientID},
	}, nil)

	out, err := uc.ListUpcoming(context.Background(), Actor{UserID: 1, Role: model.RoleAdmin})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "2026-08-29", out[0].Date)
	assert.Equal(t, "19:30", out[0].Time)
}
