package services

import (
	"context"
	"errors"
	"strconv"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/routing"
	"formsayfa.link/pkg/slugify"
	"formsayfa.link/repositories"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	// ErrFormNotFound form yok, slug eşleşmedi ya da form gizli — dışarıya
	// hepsi aynı görünür, gizlenme sebebi sızdırılmaz.
	ErrFormNotFound     FormServiceError = "form bulunamadı"
	ErrFormInvalidInput FormServiceError = "geçersiz girdi verisi"
)

// IFormService form çözümleme işlemleri için arayüz.
type IFormService interface {
	GetFormByID(ctx context.Context, id uint) (*models.Form, error)
	GetFormBySlug(ctx context.Context, slug string) (*models.Form, error)
	// ResolveIdentifier ham rota tanımlayıcısını forma çevirir.
	// treatAsSlug true ise önce slug taraması yapılır; tarama boş döner ve
	// değer tamamen sayısalsa ID ile ikinci bir deneme yapılır. false ise
	// yalnızca sayısal ID kabul edilir.
	ResolveIdentifier(ctx context.Context, raw string, treatAsSlug bool) (*models.Form, error)
	// ResolveSingleFormRoute tekil form rotasını çözer ve görünürlük
	// politikasını uygular: gizli form, var olmayan formla aynı şekilde
	// ErrFormNotFound döner.
	ResolveSingleFormRoute(ctx context.Context, route routing.Route, vctx VisibilityContext) (*models.Form, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo       repositories.IFormRepository
	visibility IVisibilityService
}

// NewFormService yeni bir FormService örneği oluşturur.
func NewFormService() IFormService {
	return &FormService{
		repo:       repositories.NewFormRepository(),
		visibility: NewVisibilityService(),
	}
}

// NewFormServiceWithDeps test ve özel kurulumlar için.
func NewFormServiceWithDeps(repo repositories.IFormRepository, visibility IVisibilityService) IFormService {
	return &FormService{repo: repo, visibility: visibility}
}

// GetFormByID doğrudan depo araması yapar.
func (s *FormService) GetFormByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrFormNotFound
	}
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// GetFormBySlug verilen slug'ı normalize eder ve tüm formlar üzerinde
// lineer tarama yapar: her formun türetilmiş slug'ı ile tam eşitlik aranır,
// depo iterasyon sırasındaki ilk eşleşme kazanır. Slug saklanmadığı için
// başka yol yok; form sayısı büyüdükçe bu tarama pahalılaşır.
func (s *FormService) GetFormBySlug(ctx context.Context, slug string) (*models.Form, error) {
	slug = slugify.Slug(slug)
	if slug == "" {
		return nil, ErrFormNotFound
	}

	// Aktiflik filtresi uygulanmaz: inaktif formlar da slug adayıdır,
	// gizlenmeleri görünürlük politikasının işidir.
	forms, err := s.repo.FindAll(ctx, nil, "id", "asc")
	if err != nil {
		return nil, err
	}

	for i := range forms {
		if forms[i].Slug() == slug {
			return &forms[i], nil
		}
	}
	return nil, ErrFormNotFound
}

// ResolveIdentifier bkz. arayüz açıklaması.
func (s *FormService) ResolveIdentifier(ctx context.Context, raw string, treatAsSlug bool) (*models.Form, error) {
	if raw == "" {
		return nil, ErrFormNotFound
	}

	if treatAsSlug {
		form, err := s.GetFormBySlug(ctx, raw)
		if err == nil {
			return form, nil
		}
		if !errors.Is(err, ErrFormNotFound) {
			return nil, err
		}
		// Slug eşleşmedi; ham değer sayısalsa ID fallback'i denenir.
		if !slugify.IsNumeric(raw) {
			return nil, ErrFormNotFound
		}
	} else if !slugify.IsNumeric(raw) {
		return nil, ErrFormNotFound
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, ErrFormNotFound
	}
	return s.GetFormByID(ctx, uint(id))
}

// ResolveSingleFormRoute bkz. arayüz açıklaması.
func (s *FormService) ResolveSingleFormRoute(ctx context.Context, route routing.Route, vctx VisibilityContext) (*models.Form, error) {
	if route.Kind != routing.KindSingleForm {
		return nil, ErrFormInvalidInput
	}

	form, err := s.ResolveIdentifier(ctx, route.Identifier, route.IsSlug)
	if err != nil {
		return nil, err
	}

	if s.visibility.IsHidden(form, vctx) {
		configslog.SLog.Debugf("Gizli form erişimi reddedildi: ID %d", form.ID)
		return nil, ErrFormNotFound
	}
	return form, nil
}

var _ IFormService = (*FormService)(nil)
