package repository

import (
	"app/internal/domain/model"
	"context"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複はDBのunique制約エラーがそのまま返る
	Create(ctx context.Context, user *model.User) error
	// メールからユーザーを一件取得する。いなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
