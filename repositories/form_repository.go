package repositories

import (
	"context"
	"errors"
	"strings"

	"formsayfa.link/configs"
	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormRepository form veritabanı okuma işlemleri için arayüz.
// Formlar bu uygulama tarafından hiçbir zaman yazılmaz; depo salt okunurdur
// ve eşzamanlı isteklerden güvenle çağrılabilir.
type IFormRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	// FindAll formları depo sırasıyla (orderBy/orderDir) döndürür.
	// activeOnly nil ise aktif/inaktif ayrımı yapılmaz.
	FindAll(ctx context.Context, activeOnly *bool, orderBy, orderDir string) ([]models.Form, error)
	// Search başlıkta büyük/küçük harf duyarsız alt dize araması yapar.
	Search(ctx context.Context, term string, activeOnly *bool, orderBy, orderDir string) ([]models.Form, error)
	// FindAllPaginated yönetim listesi için DB tarafında sayfalar.
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// FormRepository IFormRepository arayüzünü GORM ile uygular.
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository yeni bir FormRepository örneği oluşturur.
func NewFormRepository() IFormRepository {
	return &FormRepository{db: configs.GetDB()}
}

// NewFormRepositoryWithDB verilen bağlantıyla çalışan bir depo döndürür.
func NewFormRepositoryWithDB(db *gorm.DB) IFormRepository {
	return &FormRepository{db: db}
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Sıralamada izin verilen sütunlar. Dışarıdan gelen sortBy değerleri
// buradan geçmeden sorguya giremez.
var allowedFormSortColumns = map[string]string{
	"id":          "forms.id",
	"title":       "forms.title",
	"created_at":  "forms.created_at",
	"is_active":   "forms.is_active",
	"view_count":  "forms.view_count",
	"entry_count": "forms.entry_count",
}

func formOrderClause(orderBy, orderDir string) string {
	column, ok := allowedFormSortColumns[orderBy]
	if !ok {
		column = "forms.created_at"
	}
	dir := strings.ToLower(orderDir)
	if dir != "asc" && dir != "desc" {
		dir = "desc"
	}
	return column + " " + dir
}

// FindByID belirli bir ID'ye sahip formu detaylarıyla bulur.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).Preload("Detail").First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindAll tüm formları verilen sıralamayla döndürür. Slug çözümlemesi bu
// listenin sırası üzerinde ilk-eşleşme-kazanır çalışır; sıralama bu yüzden
// deterministik olmalıdır.
func (r *FormRepository) FindAll(ctx context.Context, activeOnly *bool, orderBy, orderDir string) ([]models.Form, error) {
	var forms []models.Form
	query := r.getDB(ctx).Model(&models.Form{}).Preload("Detail")
	if activeOnly != nil {
		query = query.Where("forms.is_active = ?", *activeOnly)
	}
	err := query.Order(formOrderClause(orderBy, orderDir)).Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return forms, nil
}

// Search başlık alt dize eşleşmesiyle form arar.
func (r *FormRepository) Search(ctx context.Context, term string, activeOnly *bool, orderBy, orderDir string) ([]models.Form, error) {
	var forms []models.Form
	query := r.getDB(ctx).Model(&models.Form{}).Preload("Detail").
		Where("forms.title ILIKE ?", "%"+term+"%")
	if activeOnly != nil {
		query = query.Where("forms.is_active = ?", *activeOnly)
	}
	err := query.Order(formOrderClause(orderBy, orderDir)).Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.Search: DB error", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return forms, nil
}

// FindAllPaginated formları DB tarafında sayfalayarak döndürür (yönetim
// listesi için; görünürlük filtresi uygulanmaz).
func (r *FormRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	var forms []models.Form
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Form{})

	// Başlık filtresi
	if params.Name != "" {
		query = query.Where("forms.title ILIKE ?", "%"+params.Name+"%")
	}
	// Status filtresi
	if params.Status != "" {
		query = query.Where("forms.is_active = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return forms, 0, nil
	}

	query = query.Preload("Detail").Order(formOrderClause(params.SortBy, params.OrderBy))
	if params.PerPage > 0 {
		query = query.Limit(params.PerPage).Offset(params.CalculateOffset())
	}
	if err := query.Find(&forms).Error; err != nil {
		configslog.Log.Error("FormRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// CountAll tüm formların sayısını döndürür.
func (r *FormRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Form{}).Count(&count).Error
	return count, err
}

var _ IFormRepository = (*FormRepository)(nil)
