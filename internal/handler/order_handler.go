package handler

import (
	"net/http"

	"bakery/internal/cart"
	"bakery/internal/config"
	"bakery/internal/middleware"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc    *usecase.OrderUsecase
	carts *cart.Manager
}

func NewOrderHandler(uc *usecase.OrderUsecase, carts *cart.Manager) *OrderHandler {
	return &OrderHandler{uc: uc, carts: carts}
}

type OrderCreateRequest struct {
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	DeliveryType    string                   `json:"delivery_type"`
	DeliveryAddress string                   `json:"delivery_address"`
	UserID          *int64                   `json:"user_id"`
	Items           []usecase.OrderLineInput `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	// 注文作成はゲストでも可。トークンがあれば本人に紐づく。
	e.POST("/orders", h.create, middleware.OptionalAuthJWT(cfg))

	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.listMine)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// ログイン済みならbodyのuser_idではなくセッションのidを使う
	var authedUserID *int64
	if userID, ok := getUserIDFromContext(c); ok {
		authedUserID = &userID
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), authedUserID, usecase.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		UserID:          req.UserID,
		Items:           req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	// 確定できたのでセッションのカートを空にする
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		h.carts.Get(ck.Value).Clear()
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listMine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	userID, ok := raw.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
