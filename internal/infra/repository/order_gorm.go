package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ repo.OrderRepository = (*OrderGormRepository)(nil)

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	// Itemsはここでは作らない（OrderItemRepositoryの仕事）
	order.Items = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 注文・明細・商品をひとつのJOINで読む。
// 並びは注文が created_at desc, id desc（同時刻はID降順）、明細は挿入順。
func (r *OrderGormRepository) ListRowsByEmail(ctx context.Context, email string) ([]repo.OrderRow, error) {
	var rows []repo.OrderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id            AS order_id,
			o.customer_name AS customer_name,
			o.email         AS email,
			o.address       AS address,
			o.created_at    AS created_at,
			p.name          AS product_name,
			p.price         AS price,
			oi.quantity     AS quantity
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.email = ?
		ORDER BY o.created_at DESC, o.id DESC, oi.id ASC`,
		email,
	).Scan(&rows).Error
	if err != nil {
		return []repo.OrderRow{}, err
	}
	return rows, nil
}
