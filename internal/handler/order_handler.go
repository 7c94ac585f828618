package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type orderCreateRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	// bodyのemailは受けるが使わない（保存するのはtokenのemail）
	Email   string             `json:"email"`
	Address string             `json:"address" validate:"required"`
	Items   []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderCreateResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("/my", h.listMine)
}

// POST /api/orders
func (h *OrderHandler) create(c echo.Context) error {
	email, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required order fields"})
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), email, usecase.PlaceOrderInput{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Items:        items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderCreateResponse{Success: true, OrderID: orderID})
}

// GET /api/orders/my
func (h *OrderHandler) listMine(c echo.Context) error {
	email, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// middlewareが入れたemailを取り出す
func getUserEmailFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserEmailKey)
	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
