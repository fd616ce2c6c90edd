package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// メニュー一覧はログイン不要で誰でも見られる
func TestMenuUsecase_ListMenu(t *testing.T) {
	menu := new(MenuItemRepoMock)
	uc := NewMenuUsecase(menu)

	menu.On("List", mock.Anything).Return([]model.MenuItem{
		{ID: 1, Name: "Tacos", Price: 1000, Category: "mains"},
		{ID: 2, Name: "Agua", Price: 500, Category: "drinks"},
	}, nil)
	menu.On("ListCategories", mock.Anything).Return([]string{"drinks", "mains"}, nil)

	out, err := uc.ListMenu(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, []string{"drinks", "mains"}, out.Categories)
}

// メニュー管理は管理者限定
func TestMenuUsecase_Create_ForbiddenForWaiter(t *testing.T) {
	menu := new(MenuItemRepoMock)
	uc := NewMenuUsecase(menu)

	_, err := uc.CreateMenuItem(context.Background(), Actor{UserID: 10, Role: model.RoleWaiter}, MenuItemInput{
		Name: "Tacos", Category: "mains", Price: 1000,
	})

	assertHTTPStatus(t, err, http.StatusForbidden)
	menu.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuUsecase_Create_TrimsAndSaves(t *testing.T) {
	menu := new(MenuItemRepoMock)
	uc := NewMenuUsecase(menu)

	menu.On("Create", mock.Anything, mock.MatchedBy(func(item model.MenuItem) bool {
		return item.Name == "Tacos" && item.Category == "mains" && item.Price == 1000
	})).Return(model.MenuItem{ID: 5, Name: "Tacos", Category: "mains", Price: 1000}, nil)

	created, err := uc.CreateMenuItem(context.Background(), Actor{UserID: 1, Role: model.RoleAdmin}, MenuItemInput{
		Name: "  Tacos ", Category: " mains ", Price: 1000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestMenuUsecase_Create_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   MenuItemInput
	}{
		{"名前が空", MenuItemInput{Name: " ", Category: "mains", Price: 1000}},
		{"カテゴリが空", MenuItemInput{Name: "Tacos", Category: "", Price: 1000}},
		{"負の価格", MenuItemInput{Name: "Tacos", Category: "mains", Price: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			menu := new(MenuItemRepoMock)
			uc := NewMenuUsecase(menu)

			_, err := uc.CreateMenuItem(context.Background(), Actor{UserID: 1, Role: model.RoleAdmin}, tc.in)

			assertHTTPStatus(t, err, http.StatusBadRequest)
			menu.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMenuUsecase_Update_NotFound(t *testing.T) {
	menu := new(MenuItemRepoMock)
	uc := NewMenuUsecase(menu)

	menu.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.UpdateMenuItem(context.Background(), Actor{UserID: 1, Role: model.RoleAdmin}, 99, MenuItemInput{
		Name: "Tacos", Category: "mains", Price: 1200,
	})

	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestMenuUsecase_Delete_NotFound(t *testing.T) {
	menu := new(MenuItemRepoMock)
	uc := NewMenuUsecase(menu)

	menu.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.DeleteMenuItem(context.Background(), Actor{UserID: 1, Role: model.RoleAdmin}, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
