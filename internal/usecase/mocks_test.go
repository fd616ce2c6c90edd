package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	menuItems  repo.MenuItemRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) MenuItems() repo.MenuItemRepository   { return r.menuItems }

func newTxMock(orders repo.OrderRepository, orderItems repo.OrderItemRepository, menuItems repo.MenuItemRepository) *TxManagerMock {
	return &TxManagerMock{
		Repos: &TxReposMock{orders: orders, orderItems: orderItems, menuItems: menuItems},
	}
}

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListActive(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByCreatedRange(ctx context.Context, from time.Time, to time.Time) ([]model.Order, error) {
	args := m.Called(ctx, from, to)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, updatedAt time.Time) error {
	args := m.Called(ctx, orderID, status, updatedAt)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MenuItemRepoMock struct{ mock.Mock }

func (m *MenuItemRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepoMock) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuItemRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func (m *MenuItemRepoMock) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.MenuItem)
	return created, args.Error(1)
}

func (m *MenuItemRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ReservationRepoMock struct{ mock.Mock }

func (m *ReservationRepoMock) Create(ctx context.Context, r model.Reservation) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReservationRepoMock) ListUpcoming(ctx context.Context, from time.Time) ([]model.Reservation, error) {
	args := m.Called(ctx, from)
	items, _ := args.Get(0).([]model.Reservation)
	return items, args.Error(1)
}

func (m *ReservationRepoMock) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// clock / id generator
// =====================

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

// =====================
// Helpers（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertHTTPStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	he, ok := AsHTTPError(err)
	if assert.True(t, ok, "err=%v is not HTTPError", err) {
		assert.Equal(t, wantStatus, he.Status)
	}
}
