package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（取得・初期投入）だけを約束。
type ProductRepository interface {
	// 全商品をID昇順で返す
	List(ctx context.Context) ([]model.Product, error)
	// 空のときだけ初期カタログを投入する（冪等）
	SeedIfEmpty(ctx context.Context, products []model.Product) error
}
