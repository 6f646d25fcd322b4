package handler

import (
	"net/http"

	"bakery/internal/config"
	"bakery/internal/middleware"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *InquiryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/inquiries", h.create)

	g := e.Group("/admin/inquiries")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())
	g.GET("", h.list)
}

func (h *InquiryHandler) create(c echo.Context) error {
	var req CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateInquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *InquiryHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
