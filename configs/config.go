package configs

import (
	"os"
	"time"

	"formsayfa.link/configs/configsdatabase"
	"formsayfa.link/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var sessionStore *session.Store

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce geçilir
// (production'da değişkenler ortamdan gelir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}
}

// GetDB açık GORM bağlantısını döndürür (configsdatabase üzerinden).
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// SetupSession cookie tabanlı session store'u kurar. Tek örnek tutulur.
func SetupSession() *session.Store {
	if sessionStore == nil {
		sessionStore = session.New(session.Config{
			Expiration:     24 * time.Hour,
			KeyLookup:      "cookie:formsayfa_session",
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	}
	return sessionStore
}

// GetListenAddr uygulamanın dinleyeceği adresi döndürür.
func GetListenAddr() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return ":" + port
	}
	return ":3000"
}
