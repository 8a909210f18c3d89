package main

import (
	"os"
	"os/signal"
	"syscall"

	"formsayfa.link/configs"
	"formsayfa.link/configs/configsdatabase"
	"formsayfa.link/configs/configslog"
	"formsayfa.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Static("/assets", "./assets")

	routes.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	addr := configs.GetListenAddr()
	configslog.SLog.Infof("Sunucu %s adresinde dinlemede", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}
