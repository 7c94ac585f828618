package main

import (
	"context"
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// .envはあれば読む（なくても環境変数だけで動く）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//初回だけ商品を投入する
	if err := productRepo.SeedIfEmpty(context.Background(), seedCatalog()); err != nil {
		slog.Error("failed to seed products", "error", err)
		os.Exit(1)
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC)
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg, authH, productH, orderH)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := server.Start(e, cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// 初期カタログ（4着）。
func seedCatalog() []model.Product {
	return []model.Product{
		{
			Name:        "Classic T-Shirt",
			Description: "Soft cotton t-shirt in multiple colors.",
			Price:       decimal.NewFromFloat(19.99),
			ImageURL:    "/images/tshirt.jpg",
			Size:        "S,M,L,XL",
			Category:    "Top",
		},
		{
			Name:        "Blue Jeans",
			Description: "Slim fit denim jeans.",
			Price:       decimal.NewFromFloat(39.99),
			ImageURL:    "/images/jeans.jpg",
			Size:        "30,32,34,36",
			Category:    "Bottom",
		},
		{
			Name:        "Hoodie",
			Description: "Comfortable fleece hoodie.",
			Price:       decimal.NewFromFloat(29.99),
			ImageURL:    "/images/hoodie.jpg",
			Size:        "S,M,L,XL",
			Category:    "Top",
		},
		{
			Name:        "Sneakers",
			Description: "Casual everyday sneakers.",
			Price:       decimal.NewFromFloat(49.99),
			ImageURL:    "/images/sneakers.jpg",
			Size:        "7,8,9,10",
			Category:    "Shoes",
		},
	}
}
