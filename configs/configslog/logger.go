package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (typed) logger, SLog ise sugared logger.
// InitLogger çağrılana kadar no-op logger olarak çalışırlar; böylece
// logger'ı kurmayan tüketiciler (testler dahil) nil dereference yemez.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

// InitLogger APP_ENV'e göre zap logger'ı kurar.
// production: JSON encoder, Info seviyesi; diğerleri: console encoder, Debug.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesinin anlamı yok.
		panic("logger kurulamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'lanmış log kayıtlarını flush eder. main'de defer edilmeli.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
