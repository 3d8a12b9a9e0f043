package main

import (
	"context"
	"log"
	"time"

	"admin-console/config"
	"admin-console/internal/api"
	"admin-console/internal/models"
	"admin-console/internal/service"
	"admin-console/internal/session"
	"admin-console/internal/state"
	"admin-console/internal/uploader"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting admin console")

	tp, err := util.InitTracer("admin-console", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	var storage session.Storage
	if cfg.Session.Backend == "redis" {
		redisStorage, err := session.NewRedisStorage(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "")
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStorage.Close()
		storage = redisStorage
		log.Println("Session storage: redis")
	} else {
		storage = session.NewFileStorage(cfg.Session.FilePath)
		log.Println("Session storage: file")
	}

	sessionStore := session.NewStore(storage)

	client := api.NewClient(cfg.API.BaseURL, sessionStore, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	uploads := uploader.NewStorageUploader(cfg.Storage.Endpoint, cfg.Storage.Bucket, cfg.Storage.Key)

	categoryStore := state.NewStore[models.Category]()
	productStore := state.NewStore[models.Product]()
	orderStore := state.NewStore[models.Order]()
	variantStore := state.NewStore[models.VariantOption]()

	authService := service.NewAuthService(api.NewAuthAPI(client), sessionStore)
	categoryService := service.NewCategoryService(api.NewCategoryAPI(client), categoryStore)
	productService := service.NewProductService(api.NewProductAPI(client), productStore, uploads)
	orderService := service.NewOrderService(api.NewOrderAPI(client), orderStore)
	variantService := service.NewVariantOptionService(api.NewVariantOptionAPI(client), variantStore)

	ctx := context.Background()

	if !sessionStore.IsAuthenticated() {
		if cfg.Admin.Email == "" {
			log.Fatal("No persisted session and no ADMIN_EMAIL/ADMIN_PASSWORD configured")
		}
		if err := authService.Login(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	if principal := sessionStore.Principal(); principal != nil {
		logger.Info("Session established", zap.String("admin", principal.Name))
	}

	if err := categoryService.Refresh(ctx); err != nil {
		logger.Warn("Category refresh failed", zap.Error(err))
	}
	if err := productService.Refresh(ctx); err != nil {
		logger.Warn("Product refresh failed", zap.Error(err))
	}
	if err := orderService.Refresh(ctx); err != nil {
		logger.Warn("Order refresh failed", zap.Error(err))
	}
	if err := variantService.Refresh(ctx); err != nil {
		logger.Warn("Variant option refresh failed", zap.Error(err))
	}

	logger.Info("Collections synced",
		zap.Int("categories", categoryStore.Len()),
		zap.Int("products", productStore.Len()),
		zap.Int("orders", orderStore.Len()),
		zap.Int("variant_options", variantStore.Len()))
}
