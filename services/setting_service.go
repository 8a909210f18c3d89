package services

import (
	"context"
	"errors"
	"strconv"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/queryparams"
	"formsayfa.link/repositories"

	"go.uber.org/zap"
)

// SettingServiceError özel servis hataları
type SettingServiceError string

func (e SettingServiceError) Error() string { return string(e) }

const (
	ErrSettingUnknownKey   SettingServiceError = "bilinmeyen ayar anahtarı"
	ErrSettingUpdateFailed SettingServiceError = "ayar güncellenemedi"
)

// Ayar varsayılanları. Veritabanında kayıt yoksa bunlar geçerlidir.
const (
	DefaultFormsSlug       = "forms"
	DefaultFormsPerPage    = 10
	DefaultArchiveTitle    = "Formlar"
	defaultHideFormArchive = false
	defaultHideClosedForms = false
	defaultAvailability    = true
	defaultForceAjax       = false
)

// ISettingService ayarların tipli okunması ve güncellenmesi için arayüz.
// Okumalar her çağrıda veritabanına gider; ayar değişikliklerinin anında
// etkili olması beklenir, önbellek tutulmaz.
type ISettingService interface {
	FormsSlug(ctx context.Context) string
	FormsPerPage(ctx context.Context) int
	HideFormArchive(ctx context.Context) bool
	HideClosedForms(ctx context.Context) bool
	DefaultAvailability(ctx context.Context) bool
	ForceAjax(ctx context.Context) bool
	ArchiveTitle(ctx context.Context) string
	ArchiveDescription(ctx context.Context) string
	AllSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, values map[string]string) error
}

// SettingService ISettingService arayüzünü uygular.
type SettingService struct {
	repo repositories.IOptionRepository
}

// NewSettingService yeni bir SettingService örneği oluşturur.
func NewSettingService() ISettingService {
	return &SettingService{repo: repositories.NewOptionRepository()}
}

// NewSettingServiceWithRepo test ve özel kurulumlar için.
func NewSettingServiceWithRepo(repo repositories.IOptionRepository) ISettingService {
	return &SettingService{repo: repo}
}

// Güncellenebilir anahtarlar. Dışarıdan gelen başka anahtarlar reddedilir.
var updatableOptionKeys = map[string]bool{
	models.OptionFormsSlug:          true,
	models.OptionFormsPerPage:       true,
	models.OptionHideFormArchive:    true,
	models.OptionHideClosedForms:    true,
	models.OptionDefaultAvail:       true,
	models.OptionForceAjax:          true,
	models.OptionArchiveTitle:       true,
	models.OptionArchiveDescription: true,
}

func (s *SettingService) stringOption(ctx context.Context, key, fallback string) string {
	opt, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("Ayar okunamadı, varsayılan kullanılıyor", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}
	return opt.Value
}

func (s *SettingService) boolOption(ctx context.Context, key string, fallback bool) bool {
	opt, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return fallback
	}
	return opt.Value == "1" || opt.Value == "true"
}

func (s *SettingService) intOption(ctx context.Context, key string, fallback int) int {
	opt, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return fallback
	}
	n, convErr := strconv.Atoi(opt.Value)
	if convErr != nil {
		return fallback
	}
	return n
}

// FormsSlug arşiv ve tekil form URL'lerinin kök segmenti.
func (s *SettingService) FormsSlug(ctx context.Context) string {
	slug := s.stringOption(ctx, models.OptionFormsSlug, DefaultFormsSlug)
	if slug == "" {
		return DefaultFormsSlug
	}
	return slug
}

// FormsPerPage arşiv sayfası başına form sayısı. 0 = sayfalama yok.
// Sayfalama katmanının üst sınırını aşan değerler burada kırpılır ve
// loglanır; aşağıda sessizce değişmiş bir değerle karşılaşılmaz.
func (s *SettingService) FormsPerPage(ctx context.Context) int {
	n := s.intOption(ctx, models.OptionFormsPerPage, DefaultFormsPerPage)
	if n < 0 {
		return 0
	}
	if n > queryparams.MaxPerPage {
		configslog.SLog.Warnf("forms_per_page ayarı %d üst sınır %d'e kırpıldı", n, queryparams.MaxPerPage)
		return queryparams.MaxPerPage
	}
	return n
}

// HideFormArchive arşiv sayfasının tamamen kapatılıp kapatılmadığı.
func (s *SettingService) HideFormArchive(ctx context.Context) bool {
	return s.boolOption(ctx, models.OptionHideFormArchive, defaultHideFormArchive)
}

// HideClosedForms kapanmış formların sayfalarının gizlenip gizlenmediği.
func (s *SettingService) HideClosedForms(ctx context.Context) bool {
	return s.boolOption(ctx, models.OptionHideClosedForms, defaultHideClosedForms)
}

// DefaultAvailability form bazında override yoksa geçerli olan sayfa
// erişilebilirliği varsayılanı.
func (s *SettingService) DefaultAvailability(ctx context.Context) bool {
	return s.boolOption(ctx, models.OptionDefaultAvail, defaultAvailability)
}

// ForceAjax form render ipucu; görünürlüğü etkilemez.
func (s *SettingService) ForceAjax(ctx context.Context) bool {
	return s.boolOption(ctx, models.OptionForceAjax, defaultForceAjax)
}

// ArchiveTitle arşiv sayfası başlığı.
func (s *SettingService) ArchiveTitle(ctx context.Context) string {
	return s.stringOption(ctx, models.OptionArchiveTitle, DefaultArchiveTitle)
}

// ArchiveDescription arşiv sayfası açıklaması.
func (s *SettingService) ArchiveDescription(ctx context.Context) string {
	return s.stringOption(ctx, models.OptionArchiveDescription, "")
}

// AllSettings tüm ayarları (varsayılanlarla birleşik) döndürür.
func (s *SettingService) AllSettings(ctx context.Context) (map[string]string, error) {
	values := map[string]string{
		models.OptionFormsSlug:          s.FormsSlug(ctx),
		models.OptionFormsPerPage:       strconv.Itoa(s.FormsPerPage(ctx)),
		models.OptionHideFormArchive:    boolValue(s.HideFormArchive(ctx)),
		models.OptionHideClosedForms:    boolValue(s.HideClosedForms(ctx)),
		models.OptionDefaultAvail:       boolValue(s.DefaultAvailability(ctx)),
		models.OptionForceAjax:          boolValue(s.ForceAjax(ctx)),
		models.OptionArchiveTitle:       s.ArchiveTitle(ctx),
		models.OptionArchiveDescription: s.ArchiveDescription(ctx),
	}
	return values, nil
}

// UpdateSettings verilen anahtarları günceller. Bilinmeyen anahtar tüm
// güncellemeyi reddeder.
func (s *SettingService) UpdateSettings(ctx context.Context, values map[string]string) error {
	for key := range values {
		if !updatableOptionKeys[key] {
			return ErrSettingUnknownKey
		}
	}
	for key, value := range values {
		if err := s.repo.Upsert(ctx, key, value); err != nil {
			configslog.Log.Error("UpdateSettings: ayar yazılamadı", zap.String("key", key), zap.Error(err))
			return ErrSettingUpdateFailed
		}
	}
	configslog.SLog.Infof("Ayarlar güncellendi: %d anahtar", len(values))
	return nil
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

var _ ISettingService = (*SettingService)(nil)
