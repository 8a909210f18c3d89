package models

import (
	"fmt"
	"strings"
	"time"
)

// EntryLimitPeriod giriş limitinin uygulandığı dönem.
type EntryLimitPeriod string

const (
	EntryLimitPeriodDay   EntryLimitPeriod = "day"
	EntryLimitPeriodWeek  EntryLimitPeriod = "week"
	EntryLimitPeriodMonth EntryLimitPeriod = "month"
	EntryLimitPeriodYear  EntryLimitPeriod = "year"
)

// scheduleLayout zamanlama bileşenlerinin birleştirilip parse edildiği sabit
// format: "ay/gün/yıl saat:dakika am|pm". Dakika her zaman iki haneye
// tamamlanır.
const scheduleLayout = "1/2/2006 3:04 pm"

// FormDetail formun sayfa davranışını belirleyen detay alanları.
// Zamanlama alanları kaynak sistemdeki gibi bileşen bileşen tutulur
// (tarih + saat + dakika + am/pm), tek bir timestamp olarak saklanmaz.
type FormDetail struct {
	BaseModel
	FormID      uint   `gorm:"uniqueIndex;not null"` // forms.id FK
	Description string `gorm:"type:text"`

	// Zamanlama
	ScheduleEnabled     bool   `gorm:"type:boolean;default:false"`
	ScheduleStart       string `gorm:"type:varchar(10)"` // "01/02/2006", boş = açılış tarihi yok
	ScheduleStartHour   int    `gorm:"type:integer;default:12"`
	ScheduleStartMinute int    `gorm:"type:integer;default:0"`
	ScheduleStartAmpm   string `gorm:"type:varchar(2);default:'am'"`
	ScheduleEnd         string `gorm:"type:varchar(10)"` // boş = hiç kapanmaz
	ScheduleEndHour     int    `gorm:"type:integer;default:12"`
	ScheduleEndMinute   int    `gorm:"type:integer;default:0"`
	ScheduleEndAmpm     string `gorm:"type:varchar(2);default:'am'"`

	// Erişim
	RequiresLogin bool `gorm:"type:boolean;default:false"`

	// Giriş limiti (bilgilendirme amaçlı)
	LimitEntries       bool             `gorm:"type:boolean;default:false"`
	LimitEntriesCount  int              `gorm:"type:integer;default:0"`
	LimitEntriesPeriod EntryLimitPeriod `gorm:"type:varchar(10)"`

	// Sayfa erişilebilirliği: nil ise global varsayılan geçerli,
	// set edilmişse her zaman global ayarı ezer.
	PageAvailability *bool `gorm:"type:boolean"`
}

// OpenTime formun açılış zamanını döndürür. Zamanlama kapalıysa ya da
// başlangıç tarihi yoksa (veya parse edilemiyorsa) formun oluşturulma
// zamanına düşülür: form oluşturulduğundan beri açıktır.
func (f *Form) OpenTime() time.Time {
	d := f.Detail
	if !d.ScheduleEnabled || d.ScheduleStart == "" {
		return f.CreatedAt
	}
	t, err := parseScheduleTime(d.ScheduleStart, d.ScheduleStartHour, d.ScheduleStartMinute, d.ScheduleStartAmpm)
	if err != nil {
		return f.CreatedAt
	}
	return t
}

// CloseTime formun kapanış zamanını döndürür. Kapanış tarihi yoksa ikinci
// dönüş değeri false olur: form hiç kapanmaz.
func (f *Form) CloseTime() (time.Time, bool) {
	d := f.Detail
	if !d.ScheduleEnabled || d.ScheduleEnd == "" {
		return time.Time{}, false
	}
	t, err := parseScheduleTime(d.ScheduleEnd, d.ScheduleEndHour, d.ScheduleEndMinute, d.ScheduleEndAmpm)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsOpen formun verilen anda girişlere açık olup olmadığını döndürür.
// İnaktif formlar açık değildir; zamanlama açıksa açılış saatinden önce
// form kapalıdır.
func (f *Form) IsOpen(now time.Time) bool {
	if !f.IsActive {
		return false
	}
	if f.Detail.ScheduleEnabled && now.Before(f.OpenTime()) {
		return false
	}
	return true
}

// IsClosed formun verilen anda artık kapanmış olup olmadığını döndürür.
// İnaktif formlar kapalı sayılır; zamanlama açıksa kapanış saatinden sonra
// form kapanmıştır.
func (f *Form) IsClosed(now time.Time) bool {
	if !f.IsActive {
		return true
	}
	if closeAt, ok := f.CloseTime(); ok && now.After(closeAt) {
		return true
	}
	return false
}

func parseScheduleTime(date string, hour, minute int, ampm string) (time.Time, error) {
	ampm = strings.ToLower(strings.TrimSpace(ampm))
	if ampm != "am" && ampm != "pm" {
		ampm = "am"
	}
	// Dakikaya baştaki sıfır zorlanır: "3:5 pm" değil "3:05 pm".
	raw := fmt.Sprintf("%s %d:%02d %s", date, hour, minute, ampm)
	return time.ParseInLocation(scheduleLayout, raw, time.UTC)
}
