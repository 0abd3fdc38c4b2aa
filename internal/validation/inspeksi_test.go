package validation

import (
	"testing"
	"time"

	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func inspeksiDasar(kategori string) *model.Inspeksi {
	return &model.Inspeksi{
		Kategori:        kategori,
		NoPolisi:        "B 1234 XYZ",
		Lokasi:          "Gerbang Tol Cikupa",
		TanggalInspeksi: time.Now(),
		NamaPetugas1:    "Budi Santoso",
		NIPPetugas1:     "PTG-001",
		TTDPetugas1:     "uploads/ttd/abc",
		DokumenSTNK:     "uploads/stnk/abc",
		DokumenKIR:      "uploads/kir/abc",
		DokumenSIM1:     "uploads/sim/abc",
	}
}

func tambahPetugas2(inspeksi *model.Inspeksi) *model.Inspeksi {
	inspeksi.NamaPetugas2 = "Siti Rahayu"
	inspeksi.NIPPetugas2 = "PTG-002"
	inspeksi.TTDPetugas2 = "uploads/ttd/def"
	inspeksi.DokumenSIM2 = "uploads/sim/def"
	return inspeksi
}

func TestRescueHanyaSatuPetugas(t *testing.T) {
	require.NoError(t, ValidasiInspeksi(inspeksiDasar(model.KategoriRescue)))

	err := ValidasiInspeksi(tambahPetugas2(inspeksiDasar(model.KategoriRescue)))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDerekKamtibButuhDuaPetugas(t *testing.T) {
	for _, kategori := range []string{model.KategoriDerek, model.KategoriKamtib} {
		err := ValidasiInspeksi(inspeksiDasar(kategori))
		assert.ErrorIs(t, err, apperr.ErrValidation, kategori)

		require.NoError(t, ValidasiInspeksi(tambahPetugas2(inspeksiDasar(kategori))))
	}
}

func TestPlazaPetugasKeduaOpsional(t *testing.T) {
	require.NoError(t, ValidasiInspeksi(inspeksiDasar(model.KategoriPlaza)))
	require.NoError(t, ValidasiInspeksi(tambahPetugas2(inspeksiDasar(model.KategoriPlaza))))
}

func TestKategoriTidakDikenal(t *testing.T) {
	err := ValidasiInspeksi(inspeksiDasar("HELIKOPTER"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestFieldWajib(t *testing.T) {
	inspeksi := inspeksiDasar(model.KategoriPlaza)
	inspeksi.NoPolisi = ""
	assert.ErrorIs(t, ValidasiInspeksi(inspeksi), apperr.ErrValidation)

	inspeksi = inspeksiDasar(model.KategoriPlaza)
	inspeksi.NIPPetugas1 = ""
	assert.ErrorIs(t, ValidasiInspeksi(inspeksi), apperr.ErrValidation)
}

func TestValidasiSubmitButuhSemuaTandaTangan(t *testing.T) {
	inspeksi := inspeksiDasar(model.KategoriPlaza)
	inspeksi.TTDPetugas1 = ""
	assert.ErrorIs(t, ValidasiSubmit(inspeksi), apperr.ErrValidation)

	// Petugas kedua tercantum tapi belum tanda tangan
	inspeksi = tambahPetugas2(inspeksiDasar(model.KategoriPlaza))
	inspeksi.TTDPetugas2 = "  "
	assert.ErrorIs(t, ValidasiSubmit(inspeksi), apperr.ErrValidation)

	require.NoError(t, ValidasiSubmit(tambahPetugas2(inspeksiDasar(model.KategoriPlaza))))
}

func TestValidasiSubmitButuhDokumenKendaraan(t *testing.T) {
	hapusDokumen := map[string]func(*model.Inspeksi){
		"STNK": func(i *model.Inspeksi) { i.DokumenSTNK = "" },
		"KIR":  func(i *model.Inspeksi) { i.DokumenKIR = "" },
		"SIM1": func(i *model.Inspeksi) { i.DokumenSIM1 = "  " },
	}
	for nama, hapus := range hapusDokumen {
		inspeksi := inspeksiDasar(model.KategoriPlaza)
		hapus(inspeksi)
		assert.ErrorIs(t, ValidasiSubmit(inspeksi), apperr.ErrValidation, nama)
	}

	// Draft boleh belum lengkap, syarat dokumen baru berlaku saat submit
	inspeksi := inspeksiDasar(model.KategoriPlaza)
	inspeksi.DokumenSTNK = ""
	require.NoError(t, ValidasiInspeksi(inspeksi))
}

func TestValidasiSubmitButuhSIMPetugasKedua(t *testing.T) {
	inspeksi := tambahPetugas2(inspeksiDasar(model.KategoriPlaza))
	inspeksi.DokumenSIM2 = ""
	assert.ErrorIs(t, ValidasiSubmit(inspeksi), apperr.ErrValidation)

	// Satu petugas: SIM kedua tidak dituntut
	require.NoError(t, ValidasiSubmit(inspeksiDasar(model.KategoriPlaza)))
}

func TestKondisiKelengkapanHarusDikenal(t *testing.T) {
	inspeksi := inspeksiDasar(model.KategoriPlaza)
	inspeksi.KelengkapanKendaraan = datatypes.NewJSONType(model.KelengkapanMap{
		"ban_serep": {Ada: true, Jumlah: "1", Kondisi: "LUMAYAN"},
	})
	assert.ErrorIs(t, ValidasiInspeksi(inspeksi), apperr.ErrValidation)

	inspeksi = inspeksiDasar(model.KategoriPlaza)
	inspeksi.KelengkapanSarana = datatypes.NewJSONType(model.KelengkapanMap{
		"apar": {Ada: true, Jumlah: "1"},
	})
	assert.ErrorIs(t, ValidasiInspeksi(inspeksi), apperr.ErrValidation, "item ada tapi kondisi kosong")

	inspeksi = inspeksiDasar(model.KategoriPlaza)
	inspeksi.KelengkapanKendaraan = datatypes.NewJSONType(model.KelengkapanMap{
		"ban_serep": {Ada: true, Jumlah: "1", Kondisi: model.KondisiBaik},
		"dongkrak":  {Ada: true, Jumlah: "1", Kondisi: model.KondisiRusakRingan},
		"segitiga":  {Kondisi: model.KondisiRusakBerat},
		"kotak_p3k": {},
	})
	require.NoError(t, ValidasiInspeksi(inspeksi))
}
