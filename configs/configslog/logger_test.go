package configslog

import (
	"testing"

	"go.uber.org/zap"
)

// InitLogger çağrılmadan Log/SLog kullanılabilir olmalı; kütüphane gibi
// tüketen kod logger kurulumu yapmasa da panic yememeli.
func TestLoggersUsableBeforeInit(t *testing.T) {
	if Log == nil || SLog == nil {
		t.Fatal("Log ve SLog başlangıçta nil olmamalı")
	}

	Log.Debug("no-op debug", zap.String("k", "v"))
	Log.Error("no-op error")
	SLog.Infof("no-op info: %d", 42)
	SLog.Debugf("no-op debug: %s", "x")
}

func TestInitLoggerReplacesNopLoggers(t *testing.T) {
	InitLogger()
	defer SyncLogger()

	if Log == nil || SLog == nil {
		t.Fatal("InitLogger sonrası Log ve SLog dolu olmalı")
	}
	if Log.Core().Enabled(zap.FatalLevel) == false {
		t.Fatal("kurulmuş logger en azından fatal seviyesini kabul etmeli")
	}
}
