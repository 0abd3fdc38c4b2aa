package repository

import (
	"time"

	"inspeksi-backend/internal/model"

	"gorm.io/gorm"
)

type NotifikasiRepository interface {
	Create(notifikasi *model.Notifikasi) error
	GetByID(id uint) (*model.Notifikasi, error)
	// ListByPenerima mengembalikan notifikasi untuk satu user: yang dialamatkan
	// ke NIP-nya langsung maupun ke role-nya
	ListByPenerima(nip string, role string) ([]model.Notifikasi, error)
	// MarkRead hanya mengubah notifikasi yang dialamatkan ke nip atau role
	// pemanggil dan belum terbaca
	MarkRead(id uint, nip string, role string, readAt time.Time) (int64, error)
}

type notifikasiRepository struct {
	db *gorm.DB
}

func NewNotifikasiRepository(db *gorm.DB) NotifikasiRepository {
	return &notifikasiRepository{db}
}

func (r *notifikasiRepository) Create(notifikasi *model.Notifikasi) error {
	return r.db.Create(notifikasi).Error
}

func (r *notifikasiRepository) GetByID(id uint) (*model.Notifikasi, error) {
	var notifikasi model.Notifikasi
	err := r.db.First(&notifikasi, id).Error
	if err != nil {
		return nil, err
	}
	return &notifikasi, nil
}

func (r *notifikasiRepository) ListByPenerima(nip string, role string) ([]model.Notifikasi, error) {
	var list []model.Notifikasi
	err := r.db.Where("nip_tujuan = ? OR role_tujuan = ?", nip, role).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *notifikasiRepository) MarkRead(id uint, nip string, role string, readAt time.Time) (int64, error) {
	res := r.db.Model(&model.Notifikasi{}).
		Where("id = ? AND is_read = ? AND (nip_tujuan = ? OR role_tujuan = ?)", id, false, nip, role).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt})
	return res.RowsAffected, res.Error
}
