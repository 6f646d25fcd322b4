package server

import (
	"net/http"

	"bakery/internal/config"
	"bakery/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Start はechoを組み立ててlistenする。
func Start(addr string, cfg config.Config, logger zerolog.Logger, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	// カートのセッションcookieを使うのでcredentials許可
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, h)
	return e.Start(addr)
}
