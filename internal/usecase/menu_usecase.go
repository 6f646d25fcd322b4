package usecase

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"github.com/shopspring/decimal"
)

type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
}

func NewMenuUsecase(menuRepo repo.MenuItemRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

// GET /menu の出力はmodelそのまま（公開項目だけのstruct）。
func (u *MenuUsecase) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	items, err := u.menuRepo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) Detail(ctx context.Context, id int64) (model.MenuItem, error) {
	if id <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	item, err := u.menuRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

type AdminMenuItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	IsVeg       bool
	IsSeasonal  bool
	IsAvailable bool
}

func validateMenuItemInput(in AdminMenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	return nil
}

func (u *MenuUsecase) AdminCreate(ctx context.Context, in AdminMenuItemInput) (model.MenuItem, error) {
	if err := validateMenuItemInput(in); err != nil {
		return model.MenuItem{}, err
	}

	item, err := u.menuRepo.Create(ctx, model.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    model.Category(strings.TrimSpace(in.Category)),
		ImageURL:    in.ImageURL,
		IsVeg:       in.IsVeg,
		IsSeasonal:  in.IsSeasonal,
		IsAvailable: in.IsAvailable,
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *MenuUsecase) AdminUpdate(ctx context.Context, id int64, in AdminMenuItemInput) (model.MenuItem, error) {
	if id <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}
	if err := validateMenuItemInput(in); err != nil {
		return model.MenuItem{}, err
	}

	err := u.menuRepo.Update(ctx, model.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    model.Category(strings.TrimSpace(in.Category)),
		ImageURL:    in.ImageURL,
		IsVeg:       in.IsVeg,
		IsSeasonal:  in.IsSeasonal,
		IsAvailable: in.IsAvailable,
	})
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.menuRepo.FindByID(ctx, id)
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *MenuUsecase) AdminDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	err := u.menuRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "menu item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
