package handler

import (
	"net/http"
	"strconv"
	"time"

	"bakery/internal/cart"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カートのセッションidを入れるcookie
const cartSessionCookie = "cart_session"

// /cartのHTTP。カートはcookieのセッションidに紐づく。
type CartHandler struct {
	uc    *usecase.CartUsecase
	carts *cart.Manager
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, carts *cart.Manager) *CartHandler {
	return &CartHandler{uc: uc, carts: carts}
}

type AddCartRequest struct {
	MenuItemID    int64  `json:"menu_item_id"`
	Quantity      int64  `json:"quantity"`
	Customization string `json:"customization"`
}

type UpdateCartItemRequest struct {
	MenuItemID    int64  `json:"menu_item_id"`
	Customization string `json:"customization"`
	Quantity      int64  `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items", h.updateItem)
	g.DELETE("/items/:itemId", h.removeItem)
	g.DELETE("", h.clear)
}

// cookieからセッションidを読む。無ければ発行してcookieを返す。
func (h *CartHandler) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := h.carts.NewSession()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Get(h.sessionID(c)))
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), h.sessionID(c), usecase.AddCartInput{
		MenuItemID:    req.MenuItemID,
		Quantity:      req.Quantity,
		Customization: req.Customization,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItem(h.sessionID(c), usecase.UpdateCartItemInput{
		MenuItemID:    req.MenuItemID,
		Customization: req.Customization,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.RemoveItem(h.sessionID(c), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Clear(h.sessionID(c)))
}
