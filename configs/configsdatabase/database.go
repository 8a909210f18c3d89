package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"formsayfa.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB ortam değişkenlerinden DSN kurup GORM bağlantısını açar.
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE okunur.
func InitDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	name := getEnv("DB_NAME", "formsayfa")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, password, name, sslmode)

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı açılamadı", zap.String("host", host), zap.String("db", name), zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzuna erişilemedi", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s/%s", host, name)
}

// GetDB açık GORM bağlantısını döndürür. InitDB çağrılmış olmalıdır.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB: veritabanı bağlantısı başlatılmamış, önce InitDB çağrılmalı")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır. main'de defer edilmeli.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("CloseDB: bağlantı havuzuna erişilemedi", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("CloseDB: bağlantı kapatılamadı", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
