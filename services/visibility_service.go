package services

import (
	"time"

	"formsayfa.link/models"
)

// VisibilityContext bir görünürlük değerlendirmesinin dış girdileri.
// Saat ve oturum durumu çağıran tarafından verilir; kurallar global duruma
// dokunmaz, böylece değerlendirme isteğe yereldir ve test edilebilir.
type VisibilityContext struct {
	Now      time.Time
	LoggedIn bool

	// Ayarlardan gelen politika girdileri.
	DefaultAvailability bool
	HideClosedForms     bool
}

// VisibilityRule tek bir gizleme kuralı. Kurallar sırayla değerlendirilir,
// ilk "gizle" diyen kural zinciri keser. Açık uçlu hook sistemi yerine
// tipli genişleme noktası budur: özel bir kural eklemek isteyen,
// NewVisibilityServiceWithRules ile kendi zincirini kurar.
type VisibilityRule interface {
	Name() string
	Hides(form *models.Form, vctx VisibilityContext) bool
}

// IVisibilityService bir formun sayfa olarak gösterilip gösterilmeyeceğine
// karar verir. Hem arşiv listelemesi hem doğrudan erişim aynı karardan geçer.
type IVisibilityService interface {
	IsHidden(form *models.Form, vctx VisibilityContext) bool
	IsVisible(form *models.Form, vctx VisibilityContext) bool
	Rules() []VisibilityRule
}

// VisibilityService IVisibilityService arayüzünü uygular.
type VisibilityService struct {
	rules []VisibilityRule
}

// NewVisibilityService varsayılan kural zinciriyle servis oluşturur.
// Sıra anlamlıdır: erişilebilirlik → inaktif → henüz açılmamış →
// kapanmış → giriş zorunluluğu.
func NewVisibilityService() IVisibilityService {
	return NewVisibilityServiceWithRules(
		availabilityRule{},
		inactiveRule{},
		notYetOpenRule{},
		closedRule{},
		loginRequiredRule{},
	)
}

// NewVisibilityServiceWithRules verilen kural zinciriyle servis oluşturur.
func NewVisibilityServiceWithRules(rules ...VisibilityRule) IVisibilityService {
	return &VisibilityService{rules: rules}
}

// IsHidden kuralları sırayla değerlendirir, ilk eşleşmede durur.
func (s *VisibilityService) IsHidden(form *models.Form, vctx VisibilityContext) bool {
	if form == nil {
		return true
	}
	for _, rule := range s.rules {
		if rule.Hides(form, vctx) {
			return true
		}
	}
	return false
}

// IsVisible IsHidden'ın tersidir.
func (s *VisibilityService) IsVisible(form *models.Form, vctx VisibilityContext) bool {
	return !s.IsHidden(form, vctx)
}

// Rules aktif kural zincirini döndürür.
func (s *VisibilityService) Rules() []VisibilityRule {
	return s.rules
}

/** Varsayılan kurallar ******************************************************/

// availabilityRule: form bazında override her zaman global varsayılanı ezer;
// override yoksa global varsayılan geçerlidir.
type availabilityRule struct{}

func (availabilityRule) Name() string { return "availability" }

func (availabilityRule) Hides(form *models.Form, vctx VisibilityContext) bool {
	if form.Detail.PageAvailability != nil {
		return !*form.Detail.PageAvailability
	}
	return !vctx.DefaultAvailability
}

// inactiveRule: inaktif formlar hiçbir zaman sayfa olarak gösterilmez.
type inactiveRule struct{}

func (inactiveRule) Name() string { return "inactive" }

func (inactiveRule) Hides(form *models.Form, _ VisibilityContext) bool {
	return !form.IsActive
}

// notYetOpenRule: zamanlama açık ve açılış saati gelmemişse gizle.
type notYetOpenRule struct{}

func (notYetOpenRule) Name() string { return "not_yet_open" }

func (notYetOpenRule) Hides(form *models.Form, vctx VisibilityContext) bool {
	return !form.IsOpen(vctx.Now)
}

// closedRule: yalnızca "kapalı formları gizle" ayarı açıkken, kapanış saati
// geçmiş (ya da inaktif) formları gizler.
type closedRule struct{}

func (closedRule) Name() string { return "closed" }

func (closedRule) Hides(form *models.Form, vctx VisibilityContext) bool {
	return vctx.HideClosedForms && form.IsClosed(vctx.Now)
}

// loginRequiredRule: giriş gerektiren formlar oturumsuz ziyaretçiye gizlidir.
type loginRequiredRule struct{}

func (loginRequiredRule) Name() string { return "login_required" }

func (loginRequiredRule) Hides(form *models.Form, vctx VisibilityContext) bool {
	return form.Detail.RequiresLogin && !vctx.LoggedIn
}

var _ IVisibilityService = (*VisibilityService)(nil)
