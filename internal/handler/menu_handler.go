package handler

import (
	"net/http"
	"strconv"

	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /menu の公開API
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// 公開メニューのルートを登録
func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
	e.GET("/menu/:id", h.detail)
}

func (h *MenuHandler) list(c echo.Context) error {
	category := c.QueryParam("category")

	out, err := h.uc.List(c.Request().Context(), category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
