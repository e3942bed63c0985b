package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/configs/configsredis"
	"undangan.link/configs/configssession"
	"undangan.link/database"
	"undangan.link/repositories"
	"undangan.link/routes"
	"undangan.link/services"
	"undangan.link/store"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configsapp.Load()

	configsdatabase.InitDB(cfg.Database)
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	// Şema ve varsayılan içerik her açılışta garanti edilir; ikisi de
	// idempotenttir.
	database.Initialize(db, true, true)

	sliceRepo := repositories.NewSliceRepository(db)
	weddingStore := store.NewWeddingStore(sliceRepo)
	authStore := store.NewAuthStore(sliceRepo)
	exportService := services.NewExportService(weddingStore)

	var imageService *services.ImageService
	if cfg.MinIO.Endpoint != "" {
		var err error
		imageService, err = services.NewImageService(cfg.MinIO, weddingStore)
		if err != nil {
			configslog.Log.Warn("Nesne deposu başlatılamadı, görsel yükleme devre dışı", zap.Error(err))
			imageService = nil
		}
	} else {
		configslog.SLog.Info("MinIO yapılandırılmamış, görsel yükleme devre dışı.")
	}

	var syncService *services.SyncService
	if cfg.Sync.BaseURL != "" {
		remoteClient := services.NewRemoteClient(cfg.Sync.BaseURL, cfg.Sync.APIKey)

		var notifier services.IChangeNotifier
		if redisClient := configsredis.NewClient(cfg.Redis); redisClient != nil {
			defer redisClient.Close()
			notifier = services.NewRedisNotifier(redisClient)
		}

		syncService = services.NewSyncService(weddingStore, remoteClient, notifier)
		syncService.Start(context.Background())
		defer syncService.Stop()
		configslog.SLog.Infof("Uzak senkronizasyon başlatıldı: %s", cfg.Sync.BaseURL)
	} else {
		configslog.SLog.Info("SYNC_BASE_URL boş, uzak senkronizasyon devre dışı.")
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		Views:   engine,
	})

	routes.SetupRoutes(app, routes.Deps{
		Sessions: configssession.SetupSession(),
		Store:    weddingStore,
		Auth:     authStore,
		Export:   exportService,
		Images:   imageService,
		Sync:     syncService,
	})

	// Graceful shutdown: SIGINT/SIGTERM gelince önce HTTP sunucusu kapanır,
	// ardından defer zinciri senkronizasyon ve bağlantıları kapatır.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	addr := ":" + cfg.App.Port
	configslog.SLog.Infof("%s %s adresinde dinliyor...", cfg.App.Name, addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}
