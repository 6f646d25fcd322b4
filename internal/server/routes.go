package server

import (
	"bakery/internal/config"
	"bakery/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Menu       *handler.MenuHandler
	AdminMenu  *handler.AdminMenuHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Auth       *handler.AuthHandler
	Inquiry    *handler.InquiryHandler
	Gallery    *handler.GalleryHandler
	Content    *handler.ContentHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Menu.RegisterRoutes(e)
	h.AdminMenu.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.Auth.RegisterRoutes(e, cfg)
	h.Inquiry.RegisterRoutes(e, cfg)
	h.Gallery.RegisterRoutes(e, cfg)
	h.Content.RegisterRoutes(e, cfg)
}
