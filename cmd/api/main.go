package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はctxがキャンセルされるまでサーバーを動かす。deferはすべてここで片付く
func run(ctx context.Context) error {
	//設定（.envは任意）
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log, err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.GoEnv,
		ServiceName: "storefront",
		File:        cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	metrics.Init(cfg.MetricsPrefix)

	//DB接続
	gormDB, err := db.Connect(cfg.Database, cfg.Log.Level)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()
	if err := metrics.RegisterDB(sqlDB, cfg.Database.Name); err != nil {
		log.Warn("db stats collector not registered", zap.Error(err))
	}

	if cfg.SeedCategories {
		if err := db.SeedCategories(ctx, gormDB); err != nil {
			log.Error("seed categories failed", zap.Error(err))
			return err
		}
		log.Info("categories seeded")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//カタログ検索エンジン
	engine := catalog.NewEngine(productRepo, log.Named("catalog"))

	//Usecase生成
	productUC := usecase.NewProductUsecase(engine, productRepo, txm)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	userUC := usecase.NewUserUsecase(txm, userRepo)

	//Handler生成
	handlers := server.Handlers{
		Health:       handler.NewHealthHandler(sqlDB),
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Me:           handler.NewMeHandler(userUC, orderUC),
	}

	//Server起動
	srv := server.New(cfg, log, handlers, userRepo)
	if err := srv.Start(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
