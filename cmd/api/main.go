package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/repository"
	"app/internal/usecase"
	auth "app/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(user *model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"tv":   user.TokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// 初回起動時にadminユーザーを作る
func seedAdmin(ctx context.Context, userRepo repository.UserRepository, hasher auth.PasswordHasher) error {
	_, err := userRepo.FindByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hashed, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		Email:        "admin@restaurante.com",
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	fmt.Println("admin user created: username='admin'")
	return nil
}

func main() {
	// .envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Reservation{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	reservationRepo := infraRepo.NewReservationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	if err := seedAdmin(context.Background(), userRepo, hasher); err != nil {
		panic(err)
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(txManager, idGen, clock)
	statusUC := usecase.NewOrderStatusUsecase(txManager, clock)
	reportUC := usecase.NewReportUsecase(txManager, reservationRepo, clock)
	reservationUC := usecase.NewReservationUsecase(reservationRepo, clock)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC)
	menuH := handler.NewMenuHandler(menuUC)
	orderH := handler.NewOrderHandler(orderUC, statusUC)
	reportH := handler.NewReportHandler(reportUC)
	reservationH := handler.NewReservationHandler(reservationUC)

	//HTTP
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	authH.RegisterRoutes(e)
	menuH.RegisterRoutes(e, cfg, userRepo)
	orderH.RegisterRoutes(e, cfg, userRepo)
	reportH.RegisterRoutes(e, cfg, userRepo)
	reservationH.RegisterRoutes(e, cfg, userRepo)

	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
