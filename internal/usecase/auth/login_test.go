package auth

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLoginUsecaseForTest(userRepo *UserRepoMock) *LoginUsecase {
	issuer := &stubIssuer{token: "token-abc", expiresAt: testNow.Add(15 * time.Minute)}
	return NewLoginUsecase(userRepo, &stubVerifier{}, issuer, &fixedClock{t: testNow})
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "maria").Return(&model.User{
		ID:           5,
		Username:     "maria",
		PasswordHash: "hashed:correcthorse",
		Role:         model.RoleWaiter,
	}, nil)

	out, err := uc.Execute(context.Background(), LoginInput{Username: "maria", Password: "correcthorse"})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, testNow.Add(15*time.Minute), out.ExpiresAt)
	// レスポンスにハッシュは載せない
	assert.Empty(t, out.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "maria").Return(&model.User{
		ID:           5,
		Username:     "maria",
		PasswordHash: "hashed:correcthorse",
	}, nil)

	_, err := uc.Execute(context.Background(), LoginInput{Username: "maria", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ユーザー不在もパスワード違いも同じエラー
func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := uc.Execute(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := newLoginUsecaseForTest(userRepo)

	_, err := uc.Execute(context.Background(), LoginInput{Username: "", Password: ""})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}
