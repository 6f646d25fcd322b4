package handler

import (
	"net/http"
	"strconv"

	"bakery/internal/config"
	"bakery/internal/middleware"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	uc *usecase.GalleryUsecase
}

func NewGalleryHandler(uc *usecase.GalleryUsecase) *GalleryHandler {
	return &GalleryHandler{uc: uc}
}

type AdminGalleryRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

func (h *GalleryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/gallery", h.list)

	g := e.Group("/admin/gallery")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

func (h *GalleryHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GalleryHandler) create(c echo.Context) error {
	var req AdminGalleryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreate(c.Request().Context(), usecase.AdminGalleryInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *GalleryHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDelete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
