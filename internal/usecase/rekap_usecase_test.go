package usecase

import (
	"testing"
	"time"

	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRekap(t *testing.T) (*RekapUsecase, *gorm.DB, *fakeGateway) {
	t.Helper()
	db := setupDB(t)
	gateway := &fakeGateway{}
	uc := NewRekapUsecase(repository.NewRekapRepository(db), repository.NewInspeksiRepository(db), gateway)
	return uc, db, gateway
}

func seedInspeksi(t *testing.T, db *gorm.DB, status string, tanggal time.Time) {
	t.Helper()
	inspeksi := inspeksiPlaza()
	inspeksi.Status = status
	inspeksi.TanggalInspeksi = tanggal
	require.NoError(t, db.Create(inspeksi).Error)
}

func TestBuatRekap(t *testing.T) {
	uc, db, gateway := setupRekap(t)

	mulai := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	selesai := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	dalamPeriode := mulai.Add(48 * time.Hour)

	// 3 disetujui traffic + 2 disetujui operational masuk hitungan
	for i := 0; i < 3; i++ {
		seedInspeksi(t, db, model.StatusApprovedByTraffic, dalamPeriode)
	}
	for i := 0; i < 2; i++ {
		seedInspeksi(t, db, model.StatusApprovedByOperational, dalamPeriode)
	}
	// Yang belum disetujui atau di luar periode tidak ikut
	seedInspeksi(t, db, model.StatusSubmitted, dalamPeriode)
	seedInspeksi(t, db, model.StatusRejected, dalamPeriode)
	seedInspeksi(t, db, model.StatusApprovedByTraffic, mulai.AddDate(0, -1, 0))

	rekap, err := uc.BuatRekap(BuatRekapParams{
		Judul:          "Rekap Bulanan Agustus",
		TipePeriode:    model.PeriodeBulanan,
		PeriodeMulai:   mulai,
		PeriodeSelesai: selesai,
		PengirimNIP:    "PTG-001",
		NamaPengirim:   "Budi Santoso",
		RoleTujuan:     model.RoleManagerTraffic,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, rekap.TotalInspeksi)
	assert.Equal(t, map[string]int{model.KategoriPlaza: 5}, rekap.JumlahPerKategori.Data())

	require.Len(t, gateway.terkirim, 1)
	notif := gateway.terkirim[0]
	assert.Equal(t, model.EventRecapReceived, notif.TipeEvent)
	assert.Equal(t, model.RoleManagerTraffic, notif.RoleTujuan)
}

func TestBuatRekapFilterKategori(t *testing.T) {
	uc, db, _ := setupRekap(t)

	mulai := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	selesai := mulai.AddDate(0, 1, 0)

	seedInspeksi(t, db, model.StatusApprovedByTraffic, mulai.Add(time.Hour))
	derek := inspeksiPlaza()
	derek.Kategori = model.KategoriDerek
	derek.Status = model.StatusApprovedByOperational
	derek.TanggalInspeksi = mulai.Add(time.Hour)
	require.NoError(t, db.Create(derek).Error)

	rekap, err := uc.BuatRekap(BuatRekapParams{
		Judul:          "Rekap Derek",
		TipePeriode:    model.PeriodeKustom,
		PeriodeMulai:   mulai,
		PeriodeSelesai: selesai,
		Kategori:       model.KategoriDerek,
		PengirimNIP:    "PTG-001",
		NamaPengirim:   "Budi Santoso",
		RoleTujuan:     model.RoleManagerOperational,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rekap.TotalInspeksi)
	assert.Equal(t, map[string]int{model.KategoriDerek: 1}, rekap.JumlahPerKategori.Data())
}

func TestBuatRekapValidasi(t *testing.T) {
	uc, _, _ := setupRekap(t)

	mulai := time.Now()
	selesai := mulai.Add(24 * time.Hour)

	_, err := uc.BuatRekap(BuatRekapParams{
		TipePeriode: model.PeriodeHarian, PeriodeMulai: mulai, PeriodeSelesai: selesai,
		RoleTujuan: model.RoleManagerTraffic,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "judul kosong")

	_, err = uc.BuatRekap(BuatRekapParams{
		Judul: "x", TipePeriode: model.PeriodeHarian, PeriodeMulai: mulai, PeriodeSelesai: selesai,
		RoleTujuan: "SATPAM",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "role tujuan tidak dikenal")

	_, err = uc.BuatRekap(BuatRekapParams{
		Judul: "x", TipePeriode: model.PeriodeHarian, PeriodeMulai: selesai, PeriodeSelesai: mulai,
		RoleTujuan: model.RoleManagerTraffic,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "periode terbalik")

	_, err = uc.BuatRekap(BuatRekapParams{
		Judul: "x", TipePeriode: "DASAWARSA", PeriodeMulai: mulai, PeriodeSelesai: selesai,
		RoleTujuan: model.RoleManagerTraffic,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "tipe periode tidak dikenal")
}

func TestMarkReadIdempotent(t *testing.T) {
	uc, db, _ := setupRekap(t)

	rekap := &model.Rekap{
		Judul:       "Rekap Uji",
		TipePeriode: model.PeriodeHarian,
		RoleTujuan:  model.RoleManagerTraffic,
	}
	require.NoError(t, db.Create(rekap).Error)

	pertama, err := uc.MarkRead(rekap.ID, model.RoleManagerTraffic)
	require.NoError(t, err)
	assert.True(t, pertama.IsRead)
	require.NotNil(t, pertama.ReadAt)

	kedua, err := uc.MarkRead(rekap.ID, model.RoleManagerTraffic)
	require.NoError(t, err)
	require.NotNil(t, kedua.ReadAt)
	assert.True(t, pertama.ReadAt.Equal(*kedua.ReadAt), "panggilan kedua tidak boleh menggeser ReadAt")
}

func TestMarkReadTidakDitemukan(t *testing.T) {
	uc, _, _ := setupRekap(t)

	_, err := uc.MarkRead(4242, model.RoleManagerTraffic)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMarkReadRoleLain(t *testing.T) {
	uc, db, _ := setupRekap(t)

	rekap := &model.Rekap{
		Judul:       "Rekap Uji",
		TipePeriode: model.PeriodeHarian,
		RoleTujuan:  model.RoleManagerTraffic,
	}
	require.NoError(t, db.Create(rekap).Error)

	// Role lain tidak boleh bisa menandai rekap yang bukan untuknya
	_, err := uc.MarkRead(rekap.ID, model.RoleManagerOperational)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var tersimpan model.Rekap
	require.NoError(t, db.First(&tersimpan, rekap.ID).Error)
	assert.False(t, tersimpan.IsRead)
	assert.Nil(t, tersimpan.ReadAt)
}
