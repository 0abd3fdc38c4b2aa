package repository

import (
	"fmt"
	"testing"
	"time"

	"inspeksi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) InspeksiRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Inspeksi{}))
	return NewInspeksiRepository(db)
}

func buatInspeksi(t *testing.T, repo InspeksiRepository, status string, tanggal time.Time) *model.Inspeksi {
	t.Helper()
	inspeksi := &model.Inspeksi{
		Kategori:        model.KategoriPlaza,
		NoPolisi:        "B 1234 XYZ",
		Lokasi:          "Gerbang Tol Cikupa",
		TanggalInspeksi: tanggal,
		NamaPetugas1:    "Budi Santoso",
		NIPPetugas1:     "PTG-001",
		Status:          status,
	}
	require.NoError(t, repo.Create(inspeksi))
	return inspeksi
}

func TestUpdateStatusIf(t *testing.T) {
	repo := setupRepo(t)
	inspeksi := buatInspeksi(t, repo, model.StatusSubmitted, time.Now())

	// Status yang diharapkan tidak cocok: tidak ada baris berubah
	rows, err := repo.UpdateStatusIf(inspeksi.ID, model.StatusDraft,
		map[string]interface{}{"status": model.StatusSubmitted})
	require.NoError(t, err)
	assert.Zero(t, rows)

	tersimpan, err := repo.GetByID(inspeksi.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, tersimpan.Status)

	// Status cocok: tepat satu baris berubah
	rows, err = repo.UpdateStatusIf(inspeksi.ID, model.StatusSubmitted,
		map[string]interface{}{"status": model.StatusApprovedByTraffic, "approved_by_traffic": "MGR-T1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	tersimpan, err = repo.GetByID(inspeksi.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApprovedByTraffic, tersimpan.Status)
	assert.Equal(t, "MGR-T1", tersimpan.ApprovedByTraffic)

	// Percobaan kedua dengan expected lama: kalah
	rows, err = repo.UpdateStatusIf(inspeksi.ID, model.StatusSubmitted,
		map[string]interface{}{"status": model.StatusApprovedByTraffic, "approved_by_traffic": "MGR-T2"})
	require.NoError(t, err)
	assert.Zero(t, rows)
	tersimpan, _ = repo.GetByID(inspeksi.ID)
	assert.Equal(t, "MGR-T1", tersimpan.ApprovedByTraffic)
}

func TestDeleteDraftHanyaPembuat(t *testing.T) {
	repo := setupRepo(t)
	draft := buatInspeksi(t, repo, model.StatusDraft, time.Now())

	rows, err := repo.DeleteDraft(draft.ID, "PTG-999")
	require.NoError(t, err)
	assert.Zero(t, rows, "bukan pembuat")

	dikirim := buatInspeksi(t, repo, model.StatusSubmitted, time.Now())
	rows, err = repo.DeleteDraft(dikirim.ID, "PTG-001")
	require.NoError(t, err)
	assert.Zero(t, rows, "bukan draft")

	rows, err = repo.DeleteDraft(draft.ID, "PTG-001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestListByFilter(t *testing.T) {
	repo := setupRepo(t)
	lama := buatInspeksi(t, repo, model.StatusSubmitted, time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))
	baru := buatInspeksi(t, repo, model.StatusSubmitted, time.Date(2026, 8, 15, 8, 0, 0, 0, time.UTC))
	buatInspeksi(t, repo, model.StatusDraft, time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC))

	list, err := repo.ListByFilter(InspeksiFilter{Status: model.StatusSubmitted})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Urutan default: tanggal inspeksi terbaru dulu
	assert.Equal(t, baru.ID, list[0].ID)
	assert.Equal(t, lama.ID, list[1].ID)

	list, err = repo.ListByFilter(InspeksiFilter{Status: model.StatusSubmitted, Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, baru.ID, list[0].ID)
}

func TestListApprovedInRange(t *testing.T) {
	repo := setupRepo(t)
	mulai := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	selesai := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	masuk := buatInspeksi(t, repo, model.StatusApprovedByTraffic, mulai.Add(time.Hour))
	buatInspeksi(t, repo, model.StatusSubmitted, mulai.Add(time.Hour))
	buatInspeksi(t, repo, model.StatusApprovedByTraffic, mulai.AddDate(0, -1, 0))

	list, err := repo.ListApprovedInRange(mulai, selesai, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, masuk.ID, list[0].ID)
}
