package services

import (
	"context"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/queryparams"
	"formsayfa.link/repositories"

	"go.uber.org/zap"
)

// ArchiveParams arşiv sorgusunun girdileri.
type ArchiveParams struct {
	Page    int
	PerPage int // <= 0: sayfalama yok, tüm formlar tek sayfada
	Search  string

	// ActiveOnly nil ise varsayılan (yalnız aktif formlar) uygulanır.
	ActiveOnly *bool

	// IncludeHidden true ise görünürlük filtresi atlanır. Gizli formları da
	// görmesi gereken yönetim ekranları için iç kaçış noktasıdır; public
	// uçlardan asla set edilmez.
	IncludeHidden bool

	Visibility VisibilityContext
}

// ArchivePage bir arşiv rotasının sonucu.
//
// CurrentPage istenen sayfadır ve aralık dışıysa kırpılmaz: böyle bir istekte
// Forms boş gelir ama TotalPages doğru kalır. Boş sayfanın 404 sayılıp
// sayılmayacağına HTTP katmanı karar verir.
type ArchivePage struct {
	Forms       []models.Form
	TotalCount  int64
	PerPage     int
	CurrentPage int
	TotalPages  int
}

// IArchiveService arşiv sorgu motoru: depo + görünürlük politikası +
// sayfalamayı birleştirir.
type IArchiveService interface {
	GetArchivePage(ctx context.Context, params ArchiveParams) (*ArchivePage, error)
}

// ArchiveService IArchiveService arayüzünü uygular.
type ArchiveService struct {
	repo       repositories.IFormRepository
	visibility IVisibilityService
}

// NewArchiveService yeni bir ArchiveService örneği oluşturur.
func NewArchiveService() IArchiveService {
	return &ArchiveService{
		repo:       repositories.NewFormRepository(),
		visibility: NewVisibilityService(),
	}
}

// NewArchiveServiceWithDeps test ve özel kurulumlar için.
func NewArchiveServiceWithDeps(repo repositories.IFormRepository, visibility IVisibilityService) IArchiveService {
	return &ArchiveService{repo: repo, visibility: visibility}
}

// GetArchivePage sıralı, filtrelenmiş ve dilimlenmiş form listesini üretir.
//
// Akış kaynak sistemin yaptığı gibidir: önce eşleşen tüm formlar çekilir,
// görünürlük filtresi bellekte uygulanır, toplam sayı dilimlemeden ÖNCE
// alınır, sonra istenen sayfa dilimlenir. Sıralama sabittir: oluşturulma
// tarihi, yeniden eskiye.
func (s *ArchiveService) GetArchivePage(ctx context.Context, params ArchiveParams) (*ArchivePage, error) {
	activeOnly := params.ActiveOnly
	if activeOnly == nil {
		def := true
		activeOnly = &def
	}

	var forms []models.Form
	var err error
	if params.Search != "" {
		forms, err = s.repo.Search(ctx, params.Search, activeOnly, "created_at", "desc")
	} else {
		forms, err = s.repo.FindAll(ctx, activeOnly, "created_at", "desc")
	}
	if err != nil {
		configslog.Log.Error("GetArchivePage: form sorgusu başarısız", zap.Error(err))
		return nil, err
	}

	if !params.IncludeHidden {
		visible := forms[:0:0]
		for i := range forms {
			if s.visibility.IsVisible(&forms[i], params.Visibility) {
				visible = append(visible, forms[i])
			}
		}
		forms = visible
	}

	totalCount := int64(len(forms))

	listParams := queryparams.ListParams{Page: params.Page, PerPage: params.PerPage}
	listParams.Validate()

	totalPages := queryparams.CalculateTotalPages(totalCount, listParams.PerPage)

	// Dilimleme. Aralık dışı sayfa boş dilim üretir, hata değildir.
	if listParams.PerPage > 0 {
		offset := listParams.CalculateOffset()
		if offset >= len(forms) {
			forms = []models.Form{}
		} else {
			end := offset + listParams.PerPage
			if end > len(forms) {
				end = len(forms)
			}
			forms = forms[offset:end]
		}
	}

	return &ArchivePage{
		Forms:       forms,
		TotalCount:  totalCount,
		PerPage:     listParams.PerPage,
		CurrentPage: listParams.Page,
		TotalPages:  totalPages,
	}, nil
}

var _ IArchiveService = (*ArchiveService)(nil)
