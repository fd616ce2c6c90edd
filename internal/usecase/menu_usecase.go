package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
}

func NewMenuUsecase(menuRepo repo.MenuItemRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
}

type MenuListOutput struct {
	Items      []model.MenuItem `json:"items"`
	Categories []string         `json:"categories"`
}

// ListMenuは公開メニュー（ログイン不要）。
func (u *MenuUsecase) ListMenu(ctx context.Context) (MenuListOutput, error) {
	items, err := u.menuRepo.List(ctx)
	if err != nil {
		return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	categories, err := u.menuRepo.ListCategories(ctx)
	if err != nil {
		return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return MenuListOutput{Items: items, Categories: categories}, nil
}

func (u *MenuUsecase) CreateMenuItem(ctx context.Context, actor Actor, in MenuItemInput) (model.MenuItem, error) {
	if !Authorize(actor, OpManageMenu) {
		return model.MenuItem{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if err := validateMenuItemInput(in); err != nil {
		return model.MenuItem{}, err
	}

	created, err := u.menuRepo.Create(ctx, model.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *MenuUsecase) UpdateMenuItem(ctx context.Context, actor Actor, id int64, in MenuItemInput) error {
	if !Authorize(actor, OpManageMenu) {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateMenuItemInput(in); err != nil {
		return err
	}

	err := u.menuRepo.Update(ctx, model.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *MenuUsecase) DeleteMenuItem(ctx context.Context, actor Actor, id int64) error {
	if !Authorize(actor, OpManageMenu) {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.menuRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateMenuItemInput(in MenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	return nil
}
