package usecase

import (
	"context"
	"testing"

	"bakery/internal/cart"
	"bakery/internal/domain/model"
	repo "bakery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func cartFixture(t *testing.T) (*CartUsecase, *cart.Manager, *MenuRepoMock, string) {
	t.Helper()
	menu := new(MenuRepoMock)
	carts := cart.NewManager()
	uc := NewCartUsecase(carts, menu)
	return uc, carts, menu, carts.NewSession()
}

func TestCartUsecase_AddToCart_CopiesCatalogSnapshot(t *testing.T) {
	uc, _, menu, sid := cartFixture(t)

	menu.On("FindByID", mock.Anything, int64(1)).Return(model.MenuItem{
		ID:          1,
		Name:        "Chocolate Truffle Cake",
		Price:       d("650.00"),
		ImageURL:    "https://example.com/cake.jpg",
		IsAvailable: true,
	}, nil)

	res, err := uc.AddToCart(context.Background(), sid, AddCartInput{MenuItemID: 1, Quantity: 2, Customization: " Happy Birthday "})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(res.Items))
	assert.Equal(t, "Chocolate Truffle Cake", res.Items[0].Name)
	assert.Equal(t, "Happy Birthday", res.Items[0].Customization)
	assert.True(t, res.Subtotal.Equal(d("1300.00")))
}

func TestCartUsecase_AddToCart_UnknownItem(t *testing.T) {
	uc, _, menu, sid := cartFixture(t)

	menu.On("FindByID", mock.Anything, int64(99)).Return(model.MenuItem{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), sid, AddCartInput{MenuItemID: 99, Quantity: 1})
	assertErrContains(t, err, "menu item not found")
}

func TestCartUsecase_AddToCart_UnavailableItem(t *testing.T) {
	uc, _, menu, sid := cartFixture(t)

	menu.On("FindByID", mock.Anything, int64(1)).Return(model.MenuItem{ID: 1, Name: "Sold Out", Price: d("100"), IsAvailable: false}, nil)

	_, err := uc.AddToCart(context.Background(), sid, AddCartInput{MenuItemID: 1, Quantity: 1})
	assertErrContains(t, err, "item not available")
}

func TestCartUsecase_UpdateItem_ZeroRemoves(t *testing.T) {
	uc, carts, menu, sid := cartFixture(t)

	menu.On("FindByID", mock.Anything, int64(1)).Return(model.MenuItem{ID: 1, Name: "Croissant", Price: d("90"), IsAvailable: true}, nil)
	_, err := uc.AddToCart(context.Background(), sid, AddCartInput{MenuItemID: 1, Quantity: 2})
	assert.NoError(t, err)

	res, err := uc.UpdateItem(sid, UpdateCartItemInput{MenuItemID: 1, Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Items))
	assert.Equal(t, 0, carts.Get(sid).Len())
}

func TestCartUsecase_Get_EmptyCartHasEmptyItems(t *testing.T) {
	uc, _, _, sid := cartFixture(t)

	res := uc.Get(sid)
	// nilではなく空配列でJSONに出す
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, len(res.Items))
	assert.True(t, res.Subtotal.IsZero())
}

func TestCartUsecase_Clear(t *testing.T) {
	uc, _, menu, sid := cartFixture(t)

	menu.On("FindByID", mock.Anything, int64(1)).Return(model.MenuItem{ID: 1, Name: "Croissant", Price: d("90"), IsAvailable: true}, nil)
	_, err := uc.AddToCart(context.Background(), sid, AddCartInput{MenuItemID: 1, Quantity: 1})
	assert.NoError(t, err)

	res := uc.Clear(sid)
	assert.Equal(t, 0, len(res.Items))
}
