package repository

import (
	"context"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// orders ⋈ order_items ⋈ products のJOIN結果1行。
// 集約（usecase側のfold）への入力になる。
type OrderRow struct {
	OrderID      int64
	CustomerName string
	Email        string
	Address      string
	CreatedAt    time.Time
	ProductName  string
	Price        decimal.Decimal
	Quantity     int64
}

type OrderRepository interface {
	// 注文ヘッダを1行作成して採番されたIDを返す
	Create(ctx context.Context, order model.Order) (int64, error)
	// emailで絞ったJOIN行を created_at desc, id desc（明細は挿入順）で返す
	ListRowsByEmail(ctx context.Context, email string) ([]OrderRow, error)
}
