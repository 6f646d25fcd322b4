package handler

import (
	"net/http"

	"bakery/internal/config"
	"bakery/internal/domain/model"
	"bakery/internal/middleware"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

// サイト文言・会社情報のAPI
type ContentHandler struct {
	uc *usecase.ContentUsecase
}

func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/company", h.get)

	g := e.Group("/admin/company")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())
	g.PUT("", h.update)
}

func (h *ContentHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) update(c echo.Context) error {
	// セクション構造はmodel側で型が決まっている
	var req model.SiteContent
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminUpdate(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
