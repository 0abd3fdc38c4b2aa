package model

import (
	"time"

	"gorm.io/gorm"
)

// Tipe event notifikasi
const (
	EventNewSubmission     = "NEW_SUBMISSION"
	EventApprovedByTraffic = "APPROVED_BY_TRAFFIC"
	EventRejected          = "REJECTED"
	EventRecapReceived     = "RECAP_RECEIVED"
)

// Notifikasi adalah inbox internal aplikasi. Tujuan bisa satu user (NIPTujuan)
// atau semua user dengan role tertentu (RoleTujuan), salah satu harus terisi.
type Notifikasi struct {
	gorm.Model
	NIPTujuan  string `json:"nip_tujuan" gorm:"column:nip_tujuan;index"`
	RoleTujuan string `json:"role_tujuan" gorm:"index"`
	TipeEvent  string `json:"tipe_event" gorm:"index;not null"`

	InspeksiID *uint `json:"inspeksi_id"`
	RekapID    *uint `json:"rekap_id"`

	Kategori    string `json:"kategori"`
	NoPolisi    string `json:"no_polisi"`
	NamaPetugas string `json:"nama_petugas"`
	Pesan       string `json:"pesan"`

	IsRead bool       `json:"is_read" gorm:"default:false"`
	ReadAt *time.Time `json:"read_at"`
}
