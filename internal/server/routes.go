package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) {
	productH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg)
}
