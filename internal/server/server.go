package server

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立てて全ルートを登録する。起動はしない（テストから使うため）。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Validator = validator.New()

	RegisterRoutes(e, cfg, authH, productH, orderH)

	return e
}

// Startはタイムアウト付きでHTTPサーバーを起動する。
func Start(e *echo.Echo, addr string) error {
	s := &http.Server{
		Addr:         addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return e.StartServer(s)
}
