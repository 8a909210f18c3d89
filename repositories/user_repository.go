package repositories

import (
	"context"
	"errors"

	"formsayfa.link/configs"
	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı sorguları için arayüz.
type IUserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

// NewUserRepositoryWithDB verilen bağlantıyla çalışan bir depo döndürür.
func NewUserRepositoryWithDB(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByID belirli bir ID'ye sahip kullanıcıyı bulur.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var user models.User
	err := r.getDB(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByEmail e-posta adresine göre kullanıcıyı bulur.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var user models.User
	err := r.getDB(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

var _ IUserRepository = (*UserRepository)(nil)
