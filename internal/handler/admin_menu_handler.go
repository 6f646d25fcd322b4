package handler

import (
	"net/http"
	"strconv"

	"bakery/internal/config"
	"bakery/internal/middleware"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /admin/menu の管理API
type AdminMenuHandler struct {
	uc *usecase.MenuUsecase
}

func NewAdminMenuHandler(uc *usecase.MenuUsecase) *AdminMenuHandler {
	return &AdminMenuHandler{uc: uc}
}

type AdminMenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	IsVeg       bool            `json:"is_veg"`
	IsSeasonal  bool            `json:"is_seasonal"`
	IsAvailable bool            `json:"is_available"`
}

func (h *AdminMenuHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/menu")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *AdminMenuHandler) create(c echo.Context) error {
	var req AdminMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreate(c.Request().Context(), toMenuItemInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminMenuHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AdminMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminUpdate(c.Request().Context(), id, toMenuItemInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminMenuHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDelete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toMenuItemInput(req AdminMenuItemRequest) usecase.AdminMenuItemInput {
	return usecase.AdminMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsVeg:       req.IsVeg,
		IsSeasonal:  req.IsSeasonal,
		IsAvailable: req.IsAvailable,
	}
}
