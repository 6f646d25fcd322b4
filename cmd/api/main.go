package main

import (
	"context"
	"os"

	"bakery/internal/cart"
	"bakery/internal/config"
	"bakery/internal/domain/model"
	"bakery/internal/handler"
	"bakery/internal/infra/db"
	infraRepo "bakery/internal/infra/repository"
	"bakery/internal/seed"
	"bakery/internal/server"
	"bakery/internal/usecase"
	"bakery/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .envはローカル用。なくても環境変数があれば動く
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
		&model.Inquiry{},
		&model.GalleryImage{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	inquiryRepo := infraRepo.NewInquiryGormRepository(gormDB)
	galleryRepo := infraRepo.NewGalleryGormRepository(gormDB)
	contentRepo := infraRepo.NewContentGormRepository(gormDB)

	if err := contentRepo.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//初期データ
	if err := seed.Run(context.Background(), cfg, userRepo, menuRepo, contentRepo); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}

	//セッション別カート
	carts := cart.NewManager()

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo)
	cartUC := usecase.NewCartUsecase(carts, menuRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	inquiryUC := usecase.NewInquiryUsecase(inquiryRepo)
	galleryUC := usecase.NewGalleryUsecase(galleryRepo)
	contentUC := usecase.NewContentUsecase(contentRepo)

	//Handler生成
	handlers := server.Handlers{
		Menu:       handler.NewMenuHandler(menuUC),
		AdminMenu:  handler.NewAdminMenuHandler(menuUC),
		Cart:       handler.NewCartHandler(cartUC, carts),
		Order:      handler.NewOrderHandler(orderUC, carts),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
		Auth:       handler.NewAuthHandler(authUC),
		Inquiry:    handler.NewInquiryHandler(inquiryUC),
		Gallery:    handler.NewGalleryHandler(galleryUC),
		Content:    handler.NewContentHandler(contentUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info().Str("addr", addr).Msg("server starting")
	if err := server.Start(addr, cfg, logger, handlers); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
