package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの永続化（保存・取得）だけを約束。
// 注文サブシステムからは読み取り専用（FindByIDのみ使う）。
type MenuItemRepository interface {
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	ListCategories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, m model.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
