package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	// 認証失敗はどれでも同じエラーにする（ユーザー存在の推測防止）
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// 平文とハッシュを比較する約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// アクセストークンを発行する約束（実装はcmd側のJWT issuer）
type TokenIssuer interface {
	Issue(user *model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string     `json:"access_token"`
	ExpiresAt   time.Time  `json:"expires_at"`
	User        model.User `json:"user"`
}

// LoginUsecaseはログインの処理。
type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return out, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user, now)
	if err != nil {
		return out, err
	}

	safeUser := *user
	safeUser.PasswordHash = ""

	out.AccessToken = token
	out.ExpiresAt = expiresAt
	out.User = safeUser
	return out, nil
}
