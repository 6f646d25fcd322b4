package usecase

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/cart"
	repo "bakery/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッションのカート操作。カートは
// cart.Manager が持つハンドルで、DBには書かない。
type CartUsecase struct {
	carts    *cart.Manager
	menuRepo repo.MenuItemRepository
}

func NewCartUsecase(carts *cart.Manager, menuRepo repo.MenuItemRepository) *CartUsecase {
	return &CartUsecase{carts: carts, menuRepo: menuRepo}
}

type AddCartInput struct {
	MenuItemID    int64
	Quantity      int64
	Customization string
}

type UpdateCartItemInput struct {
	MenuItemID    int64
	Customization string
	Quantity      int64
}

type CartResponse struct {
	Items    []cart.Line     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (u *CartUsecase) Get(sessionID string) CartResponse {
	return toCartResponse(u.carts.Get(sessionID).Snapshot())
}

// AddToCart はカタログから必要な項目を写して明細を追加する。
// 同じ (商品, カスタマイズ) は数量加算。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.MenuItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}
	if in.Quantity < 1 {
		in.Quantity = 1
	}

	item, err := u.menuRepo.FindByID(ctx, in.MenuItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "menu item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !item.IsAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "item not available")
	}

	c := u.carts.Get(sessionID)
	c.Add(cart.Line{
		MenuItemID:    item.ID,
		Name:          item.Name,
		UnitPrice:     item.Price,
		ImageURL:      item.ImageURL,
		Quantity:      in.Quantity,
		Customization: strings.TrimSpace(in.Customization),
	})

	return toCartResponse(c.Snapshot()), nil
}

// UpdateItem は数量変更。0以下で行削除。
func (u *CartUsecase) UpdateItem(sessionID string, in UpdateCartItemInput) (CartResponse, error) {
	if in.MenuItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	c := u.carts.Get(sessionID)
	c.UpdateQuantity(in.MenuItemID, strings.TrimSpace(in.Customization), in.Quantity)
	return toCartResponse(c.Snapshot()), nil
}

// RemoveItem は商品idの行を全部消す。
func (u *CartUsecase) RemoveItem(sessionID string, menuItemID int64) (CartResponse, error) {
	if menuItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	c := u.carts.Get(sessionID)
	c.RemoveItem(menuItemID)
	return toCartResponse(c.Snapshot()), nil
}

func (u *CartUsecase) Clear(sessionID string) CartResponse {
	c := u.carts.Get(sessionID)
	c.Clear()
	return toCartResponse(c.Snapshot())
}

func toCartResponse(s cart.Snapshot) CartResponse {
	if s.Lines == nil {
		s.Lines = []cart.Line{}
	}
	return CartResponse{Items: s.Lines, Subtotal: s.Subtotal}
}
