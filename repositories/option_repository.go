package repositories

import (
	"context"
	"errors"

	"formsayfa.link/configs"
	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IOptionRepository ayar kayıtları için arayüz.
type IOptionRepository interface {
	FindByKey(ctx context.Context, key string) (*models.Option, error)
	FindAll(ctx context.Context) ([]models.Option, error)
	Upsert(ctx context.Context, key, value string) error
}

// OptionRepository IOptionRepository arayüzünü uygular.
type OptionRepository struct {
	db *gorm.DB
}

// NewOptionRepository yeni bir OptionRepository örneği oluşturur.
func NewOptionRepository() IOptionRepository {
	return &OptionRepository{db: configs.GetDB()}
}

// NewOptionRepositoryWithDB verilen bağlantıyla çalışan bir depo döndürür.
func NewOptionRepositoryWithDB(db *gorm.DB) IOptionRepository {
	return &OptionRepository{db: db}
}

func (r *OptionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByKey anahtara göre ayar kaydını bulur.
func (r *OptionRepository) FindByKey(ctx context.Context, key string) (*models.Option, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var opt models.Option
	err := r.getDB(ctx).Where("key = ?", key).First(&opt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OptionRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &opt, nil
}

// FindAll tüm ayar kayıtlarını döndürür.
func (r *OptionRepository) FindAll(ctx context.Context) ([]models.Option, error) {
	var opts []models.Option
	err := r.getDB(ctx).Order("key asc").Find(&opts).Error
	if err != nil {
		configslog.Log.Error("OptionRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return opts, nil
}

// Upsert anahtar varsa değeri günceller, yoksa kaydı oluşturur.
func (r *OptionRepository) Upsert(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("boş anahtar ile ayar yazılamaz")
	}
	opt := models.Option{Key: key, Value: value}
	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&opt).Error
	if err != nil {
		configslog.Log.Error("OptionRepository.Upsert: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

var _ IOptionRepository = (*OptionRepository)(nil)
