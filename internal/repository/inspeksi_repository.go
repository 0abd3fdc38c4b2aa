package repository

import (
	"time"

	"inspeksi-backend/internal/model"

	"gorm.io/gorm"
)

// InspeksiFilter untuk pencarian daftar inspeksi
type InspeksiFilter struct {
	Status         string
	Kategori       string
	PetugasNIP     string
	TanggalMulai   *time.Time
	TanggalSelesai *time.Time
	Limit          int
	Offset         int
}

type InspeksiRepository interface {
	Create(inspeksi *model.Inspeksi) error
	GetByID(id uint) (*model.Inspeksi, error)
	ListByFilter(filter InspeksiFilter) ([]model.Inspeksi, error)
	ListApprovedInRange(mulai, selesai time.Time, kategori string) ([]model.Inspeksi, error)
	// UpdateStatusIf adalah satu-satunya jalur tulis untuk transisi status:
	// UPDATE bersyarat pada status saat ini, mengembalikan jumlah baris yang
	// berubah (0 = status sudah tidak sama / id tidak ada).
	UpdateStatusIf(id uint, expectedStatus string, changes map[string]interface{}) (int64, error)
	// DeleteDraft hanya menghapus baris DRAFT milik petugas yang meminta
	DeleteDraft(id uint, nipPetugas string) (int64, error)
}

type inspeksiRepository struct {
	db *gorm.DB
}

func NewInspeksiRepository(db *gorm.DB) InspeksiRepository {
	return &inspeksiRepository{db}
}

func (r *inspeksiRepository) Create(inspeksi *model.Inspeksi) error {
	return r.db.Create(inspeksi).Error
}

func (r *inspeksiRepository) GetByID(id uint) (*model.Inspeksi, error) {
	var inspeksi model.Inspeksi
	err := r.db.First(&inspeksi, id).Error
	if err != nil {
		return nil, err
	}
	return &inspeksi, nil
}

func (r *inspeksiRepository) ListByFilter(filter InspeksiFilter) ([]model.Inspeksi, error) {
	var list []model.Inspeksi

	q := r.db.Model(&model.Inspeksi{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Kategori != "" {
		q = q.Where("kategori = ?", filter.Kategori)
	}
	if filter.PetugasNIP != "" {
		q = q.Where("nip_petugas1 = ? OR nip_petugas2 = ?", filter.PetugasNIP, filter.PetugasNIP)
	}
	if filter.TanggalMulai != nil {
		q = q.Where("tanggal_inspeksi >= ?", filter.TanggalMulai)
	}
	if filter.TanggalSelesai != nil {
		q = q.Where("tanggal_inspeksi <= ?", filter.TanggalSelesai)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	err := q.Order("tanggal_inspeksi desc").Find(&list).Error
	return list, err
}

func (r *inspeksiRepository) ListApprovedInRange(mulai, selesai time.Time, kategori string) ([]model.Inspeksi, error) {
	var list []model.Inspeksi

	q := r.db.Where("status IN ?", []string{model.StatusApprovedByTraffic, model.StatusApprovedByOperational}).
		Where("tanggal_inspeksi >= ? AND tanggal_inspeksi <= ?", mulai, selesai)
	if kategori != "" {
		q = q.Where("kategori = ?", kategori)
	}

	err := q.Order("tanggal_inspeksi desc").Find(&list).Error
	return list, err
}

func (r *inspeksiRepository) UpdateStatusIf(id uint, expectedStatus string, changes map[string]interface{}) (int64, error) {
	// Satu UPDATE bersyarat, bukan read-then-write, supaya dua approval
	// bersamaan tidak mungkin sama-sama berhasil
	res := r.db.Model(&model.Inspeksi{}).
		Where("id = ? AND status = ?", id, expectedStatus).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *inspeksiRepository) DeleteDraft(id uint, nipPetugas string) (int64, error) {
	res := r.db.Where("id = ? AND status = ? AND nip_petugas1 = ?", id, model.StatusDraft, nipPetugas).
		Delete(&model.Inspeksi{})
	return res.RowsAffected, res.Error
}
