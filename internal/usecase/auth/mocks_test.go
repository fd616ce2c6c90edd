package auth

import (
	"context"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// bcryptを回さない軽量スタブ
type stubHasher struct{}

func (h *stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type stubVerifier struct{}

func (v *stubVerifier) Verify(plain string, hashed string) bool {
	return hashed == "hashed:"+plain
}

type stubIssuer struct {
	token     string
	expiresAt time.Time
}

func (i *stubIssuer) Issue(user *model.User, now time.Time) (string, time.Time, error) {
	return i.token, i.expiresAt, nil
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }
