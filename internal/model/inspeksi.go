package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status inspeksi. Perpindahan status hanya boleh dilakukan lewat
// usecase.ApprovalUsecase.
const (
	StatusDraft                 = "DRAFT"
	StatusSubmitted             = "SUBMITTED"
	StatusApprovedByTraffic     = "APPROVED_BY_TRAFFIC"
	StatusApprovedByOperational = "APPROVED_BY_OPERATIONAL"
	StatusRejected              = "REJECTED"
)

// Kategori kendaraan yang diinspeksi
const (
	KategoriPlaza  = "PLAZA"
	KategoriDerek  = "DEREK"
	KategoriKamtib = "KAMTIB"
	KategoriRescue = "RESCUE"
)

// Kondisi item kelengkapan
const (
	KondisiBaik        = "BAIK"
	KondisiRusakRingan = "RUSAK_RINGAN"
	KondisiRusakBerat  = "RUSAK_BERAT"
)

// Role yang melakukan penolakan
const (
	RejectedByTraffic     = "TRAFFIC"
	RejectedByOperational = "OPERATIONAL"
)

// ItemKelengkapan adalah satu baris checklist (ada/tidak, jumlah, kondisi)
type ItemKelengkapan struct {
	Ada     bool   `json:"ada"`
	Jumlah  string `json:"jumlah"`
	Kondisi string `json:"kondisi"` // BAIK / RUSAK_RINGAN / RUSAK_BERAT
}

// KelengkapanMap memetakan nama item ke detailnya, disimpan sebagai kolom JSON
type KelengkapanMap map[string]ItemKelengkapan

type Inspeksi struct {
	gorm.Model
	Kategori        string    `json:"kategori" gorm:"index;not null" validate:"required,oneof=PLAZA DEREK KAMTIB RESCUE"`
	NoPolisi        string    `json:"no_polisi" gorm:"not null" validate:"required"`
	Lokasi          string    `json:"lokasi" validate:"required"`
	TanggalInspeksi time.Time `json:"tanggal_inspeksi" gorm:"index"`

	// Petugas 1 selalu wajib; petugas 2 tergantung kategori (lihat package validation)
	NamaPetugas1 string `json:"nama_petugas1" validate:"required"`
	NIPPetugas1  string `json:"nip_petugas1" gorm:"column:nip_petugas1;index" validate:"required"`
	TTDPetugas1  string `json:"ttd_petugas1"`
	NamaPetugas2 string `json:"nama_petugas2"`
	NIPPetugas2  string `json:"nip_petugas2" gorm:"column:nip_petugas2"`
	TTDPetugas2  string `json:"ttd_petugas2"`

	KelengkapanSarana    datatypes.JSONType[KelengkapanMap] `json:"kelengkapan_sarana"`
	KelengkapanKendaraan datatypes.JSONType[KelengkapanMap] `json:"kelengkapan_kendaraan"`

	// Referensi dokumen (hasil upload ke DokumenStore) + masa berlaku
	DokumenSTNK     string     `json:"dokumen_stnk"`
	MasaBerlakuSTNK *time.Time `json:"masa_berlaku_stnk"`
	DokumenKIR      string     `json:"dokumen_kir"`
	MasaBerlakuKIR  *time.Time `json:"masa_berlaku_kir"`
	DokumenSIM1     string     `json:"dokumen_sim1"`
	MasaBerlakuSIM1 *time.Time `json:"masa_berlaku_sim1"`
	DokumenSIM2     string     `json:"dokumen_sim2"`
	MasaBerlakuSIM2 *time.Time `json:"masa_berlaku_sim2"`
	BuktiService    string     `json:"bukti_service"`
	BuktiBBM        string     `json:"bukti_bbm"`

	Status string `json:"status" gorm:"index;default:DRAFT"`

	// Metadata approval, masing-masing hanya diisi sekali oleh transisinya
	ApprovedByTraffic     string     `json:"approved_by_traffic"`
	ApprovedAtTraffic     *time.Time `json:"approved_at_traffic"`
	TTDManagerTraffic     string     `json:"ttd_manager_traffic"`
	ApprovedByOperational string     `json:"approved_by_operational"`
	ApprovedAtOperational *time.Time `json:"approved_at_operational"`
	TTDManagerOperational string     `json:"ttd_manager_operational"`

	// Metadata penolakan
	RejectedBy      string     `json:"rejected_by"` // TRAFFIC / OPERATIONAL
	RejectedAt      *time.Time `json:"rejected_at"`
	AlasanPenolakan string     `json:"alasan_penolakan"`

	Catatan string `json:"catatan"`
}

// Terminal menandakan status tidak boleh berubah lagi
func Terminal(status string) bool {
	return status == StatusApprovedByOperational || status == StatusRejected
}
