// Package validation memusatkan aturan kelengkapan inspeksi per kategori
// kendaraan, supaya empat kategori tidak punya empat jalur validasi terpisah.
package validation

import (
	"fmt"
	"strings"

	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// aturanKategori menentukan jumlah petugas dan dokumen wajib per kategori
type aturanKategori struct {
	Petugas2Wajib    bool
	Petugas2Dilarang bool
	DokumenWajib     []string
}

// Dokumen kendaraan yang wajib ada sebelum submit. SIM petugas 2 tidak masuk
// daftar ini karena mengikuti ada-tidaknya petugas 2, bukan kategori.
var dokumenKendaraan = []string{"STNK", "KIR", "SIM petugas 1"}

// RESCUE satu petugas, DEREK/KAMTIB dua petugas, PLAZA petugas kedua opsional
var aturan = map[string]aturanKategori{
	model.KategoriPlaza:  {DokumenWajib: dokumenKendaraan},
	model.KategoriDerek:  {Petugas2Wajib: true, DokumenWajib: dokumenKendaraan},
	model.KategoriKamtib: {Petugas2Wajib: true, DokumenWajib: dokumenKendaraan},
	model.KategoriRescue: {Petugas2Dilarang: true, DokumenWajib: dokumenKendaraan},
}

var refDokumen = map[string]func(*model.Inspeksi) string{
	"STNK":          func(i *model.Inspeksi) string { return i.DokumenSTNK },
	"KIR":           func(i *model.Inspeksi) string { return i.DokumenKIR },
	"SIM petugas 1": func(i *model.Inspeksi) string { return i.DokumenSIM1 },
}

// ValidasiInspeksi memeriksa kelengkapan data dasar + aturan petugas per
// kategori. Dipanggil sebelum record dibuat.
func ValidasiInspeksi(inspeksi *model.Inspeksi) error {
	if err := validate.Struct(inspeksi); err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, err.Error())
	}

	rule, ok := aturan[inspeksi.Kategori]
	if !ok {
		return fmt.Errorf("%w: kategori %s tidak dikenal", apperr.ErrValidation, inspeksi.Kategori)
	}

	punyaPetugas2 := strings.TrimSpace(inspeksi.NIPPetugas2) != "" ||
		strings.TrimSpace(inspeksi.NamaPetugas2) != ""

	if rule.Petugas2Wajib && !punyaPetugas2 {
		return fmt.Errorf("%w: kategori %s membutuhkan dua petugas", apperr.ErrValidation, inspeksi.Kategori)
	}
	if rule.Petugas2Dilarang && punyaPetugas2 {
		return fmt.Errorf("%w: kategori %s hanya boleh satu petugas", apperr.ErrValidation, inspeksi.Kategori)
	}

	for _, peta := range []model.KelengkapanMap{inspeksi.KelengkapanSarana.Data(), inspeksi.KelengkapanKendaraan.Data()} {
		for nama, item := range peta {
			switch item.Kondisi {
			case model.KondisiBaik, model.KondisiRusakRingan, model.KondisiRusakBerat:
			case "":
				if item.Ada {
					return fmt.Errorf("%w: kondisi item %s belum diisi", apperr.ErrValidation, nama)
				}
			default:
				return fmt.Errorf("%w: kondisi item %s tidak dikenal: %s", apperr.ErrValidation, nama, item.Kondisi)
			}
		}
	}

	return nil
}

// ValidasiSubmit memeriksa syarat sebelum inspeksi keluar dari DRAFT:
// semua petugas yang tercantum sudah tanda tangan dan dokumen wajib
// kategorinya sudah diunggah.
func ValidasiSubmit(inspeksi *model.Inspeksi) error {
	if err := ValidasiInspeksi(inspeksi); err != nil {
		return err
	}

	if strings.TrimSpace(inspeksi.TTDPetugas1) == "" {
		return fmt.Errorf("%w: tanda tangan petugas 1 belum ada", apperr.ErrValidation)
	}
	if strings.TrimSpace(inspeksi.NIPPetugas2) != "" && strings.TrimSpace(inspeksi.TTDPetugas2) == "" {
		return fmt.Errorf("%w: tanda tangan petugas 2 belum ada", apperr.ErrValidation)
	}

	// Kategori sudah dipastikan dikenal oleh ValidasiInspeksi di atas
	for _, nama := range aturan[inspeksi.Kategori].DokumenWajib {
		if strings.TrimSpace(refDokumen[nama](inspeksi)) == "" {
			return fmt.Errorf("%w: dokumen %s belum diunggah", apperr.ErrValidation, nama)
		}
	}
	if strings.TrimSpace(inspeksi.NIPPetugas2) != "" && strings.TrimSpace(inspeksi.DokumenSIM2) == "" {
		return fmt.Errorf("%w: dokumen SIM petugas 2 belum diunggah", apperr.ErrValidation)
	}

	return nil
}
