package repository

import (
	"time"

	"inspeksi-backend/internal/model"

	"gorm.io/gorm"
)

type RekapRepository interface {
	Create(rekap *model.Rekap) error
	GetByID(id uint) (*model.Rekap, error)
	ListByRoleTujuan(role string) ([]model.Rekap, error)
	ListByPengirim(nip string) ([]model.Rekap, error)
	// MarkRead hanya mengubah baris yang dialamatkan ke roleTujuan dan belum
	// terbaca; panggilan kedua tidak mengubah apa-apa (idempotent)
	MarkRead(id uint, roleTujuan string, readAt time.Time) (int64, error)
}

type rekapRepository struct {
	db *gorm.DB
}

func NewRekapRepository(db *gorm.DB) RekapRepository {
	return &rekapRepository{db}
}

func (r *rekapRepository) Create(rekap *model.Rekap) error {
	return r.db.Create(rekap).Error
}

func (r *rekapRepository) GetByID(id uint) (*model.Rekap, error) {
	var rekap model.Rekap
	err := r.db.First(&rekap, id).Error
	if err != nil {
		return nil, err
	}
	return &rekap, nil
}

func (r *rekapRepository) ListByRoleTujuan(role string) ([]model.Rekap, error) {
	var list []model.Rekap
	err := r.db.Where("role_tujuan = ?", role).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *rekapRepository) ListByPengirim(nip string) ([]model.Rekap, error) {
	var list []model.Rekap
	err := r.db.Where("pengirim_nip = ?", nip).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *rekapRepository) MarkRead(id uint, roleTujuan string, readAt time.Time) (int64, error) {
	res := r.db.Model(&model.Rekap{}).
		Where("id = ? AND role_tujuan = ? AND is_read = ?", id, roleTujuan, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt})
	return res.RowsAffected, res.Error
}
