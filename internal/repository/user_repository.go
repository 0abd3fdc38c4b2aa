package repository

import (
	"inspeksi-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user model.User) error {
	return r.db.Create(&user).Error
}

func (r *UserRepository) GetByNIP(nip string) (model.User, error) {
	var user model.User
	err := r.db.Where("nip = ?", nip).First(&user).Error
	return user, err
}

// ListByRole dipakai gateway notifikasi untuk fan-out push ke semua user
// dengan role tujuan
func (r *UserRepository) ListByRole(role string) ([]model.User, error) {
	var list []model.User
	err := r.db.Where("role = ? AND is_active = ?", role, true).Find(&list).Error
	return list, err
}

func (r *UserRepository) UpdateFirebaseToken(nip string, token string) error {
	return r.db.Model(&model.User{}).Where("nip = ?", nip).
		Update("firebase_token", token).Error
}
