package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoのValidatorをgo-playground/validatorで実装する。
// handlerのリクエスト構造体のvalidateタグが対象。
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		// 詳細はクライアントに返さない（400固定）
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	return nil
}
