package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipe periode rekap
const (
	PeriodeHarian   = "HARIAN"
	PeriodeMingguan = "MINGGUAN"
	PeriodeBulanan  = "BULANAN"
	PeriodeTahunan  = "TAHUNAN"
	PeriodeKustom   = "KUSTOM"
)

// Rekap adalah snapshot ringkasan inspeksi yang sudah disetujui pada satu
// periode. Setelah dibuat isinya tidak pernah dihitung ulang.
type Rekap struct {
	gorm.Model
	Judul          string    `json:"judul"`
	TipePeriode    string    `json:"tipe_periode"`
	PeriodeMulai   time.Time `json:"periode_mulai"`
	PeriodeSelesai time.Time `json:"periode_selesai"`
	Kategori       string    `json:"kategori"` // kosong = semua kategori

	TotalInspeksi     int                                `json:"total_inspeksi"`
	JumlahPerKategori datatypes.JSONType[map[string]int] `json:"jumlah_per_kategori"`

	PengirimNIP  string `json:"pengirim_nip" gorm:"index"`
	NamaPengirim string `json:"nama_pengirim"`
	RoleTujuan   string `json:"role_tujuan" gorm:"index"`

	IsRead  bool       `json:"is_read" gorm:"default:false"`
	ReadAt  *time.Time `json:"read_at"`
	Catatan string     `json:"catatan"`
}
