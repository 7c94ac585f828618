package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	CustomerName string
	Address      string
	Items        []PlaceOrderItemInput
}

type OrderItemOutput struct {
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customerName"`
	Email        string            `json:"email"`
	Address      string            `json:"address"`
	CreatedAt    time.Time         `json:"createdAt"`
	Items        []OrderItemOutput `json:"items"`
}

// PlaceOrderは注文ヘッダ＋全明細を1トランザクションで永続化する。
// emailは必ず認証済みユーザーのもの（bodyのemailはhandlerが捨てる）。
// どこかで失敗したら全体rollbackで、部分的な行は一切残らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, email string, in PlaceOrderInput) (int64, error) {
	if email == "" {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "customerName required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "address required")
	}
	if len(in.Items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "items required")
	}
	// handler側のvalidatorが先に弾くが、store呼び出し前にもう一度確認する
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid productId")
		}
		if it.Quantity <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			CustomerName: in.CustomerName,
			Email:        email,
			Address:      in.Address,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}

		// 不正なproductIdはここでFK違反になり、注文ヘッダごとrollbackされる
		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

// ListMyOrdersはJOINしたフラット行を注文単位にfoldして返す。
// 行は created_at desc, id desc で届くので、最初に見た注文IDの順を保てばよい。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, email string) ([]OrderOutput, error) {
	if email == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rows, err := u.orders.ListRowsByEmail(ctx, email)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0)
	index := make(map[int64]int) // orderID -> outsの位置

	for _, row := range rows {
		i, seen := index[row.OrderID]
		if !seen {
			// 最初の行が注文ヘッダを確定する
			outs = append(outs, OrderOutput{
				ID:           row.OrderID,
				CustomerName: row.CustomerName,
				Email:        row.Email,
				Address:      row.Address,
				CreatedAt:    row.CreatedAt,
				Items:        []OrderItemOutput{},
			})
			i = len(outs) - 1
			index[row.OrderID] = i
		}
		// 2行目以降は明細を追加するだけ
		outs[i].Items = append(outs[i].Items, OrderItemOutput{
			ProductName: row.ProductName,
			Price:       row.Price,
			Quantity:    row.Quantity,
		})
	}

	return outs, nil
}
