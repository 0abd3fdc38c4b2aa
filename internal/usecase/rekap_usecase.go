package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/notification"
	"inspeksi-backend/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RekapUsecase membangun snapshot rekap dari inspeksi yang sudah disetujui.
// Rekap tidak pernah mengubah inspeksi manapun dan tidak dihitung ulang
// setelah dibuat.
type RekapUsecase struct {
	rekapRepo    repository.RekapRepository
	inspeksiRepo repository.InspeksiRepository
	gateway      notification.Gateway
}

func NewRekapUsecase(rekapRepo repository.RekapRepository, inspeksiRepo repository.InspeksiRepository, gateway notification.Gateway) *RekapUsecase {
	return &RekapUsecase{rekapRepo: rekapRepo, inspeksiRepo: inspeksiRepo, gateway: gateway}
}

// BuatRekapParams berisi parameter pembuatan rekap dari pengirim
type BuatRekapParams struct {
	Judul          string
	TipePeriode    string
	PeriodeMulai   time.Time
	PeriodeSelesai time.Time
	Kategori       string
	PengirimNIP    string
	NamaPengirim   string
	RoleTujuan     string
	Catatan        string
}

func (u *RekapUsecase) BuatRekap(params BuatRekapParams) (*model.Rekap, error) {
	if params.Judul == "" {
		return nil, fmt.Errorf("%w: judul rekap wajib diisi", apperr.ErrValidation)
	}
	if params.RoleTujuan != model.RoleManagerTraffic && params.RoleTujuan != model.RoleManagerOperational {
		return nil, fmt.Errorf("%w: role tujuan %s tidak dikenal", apperr.ErrValidation, params.RoleTujuan)
	}
	if !params.PeriodeSelesai.After(params.PeriodeMulai) {
		return nil, fmt.Errorf("%w: periode selesai harus setelah periode mulai", apperr.ErrValidation)
	}
	switch params.TipePeriode {
	case model.PeriodeHarian, model.PeriodeMingguan, model.PeriodeBulanan, model.PeriodeTahunan, model.PeriodeKustom:
	default:
		return nil, fmt.Errorf("%w: tipe periode %s tidak dikenal", apperr.ErrValidation, params.TipePeriode)
	}

	inspeksis, err := u.inspeksiRepo.ListApprovedInRange(params.PeriodeMulai, params.PeriodeSelesai, params.Kategori)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}

	jumlahPerKategori := map[string]int{}
	for _, inspeksi := range inspeksis {
		jumlahPerKategori[inspeksi.Kategori]++
	}

	rekap := &model.Rekap{
		Judul:             params.Judul,
		TipePeriode:       params.TipePeriode,
		PeriodeMulai:      params.PeriodeMulai,
		PeriodeSelesai:    params.PeriodeSelesai,
		Kategori:          params.Kategori,
		TotalInspeksi:     len(inspeksis),
		JumlahPerKategori: datatypes.NewJSONType(jumlahPerKategori),
		PengirimNIP:       params.PengirimNIP,
		NamaPengirim:      params.NamaPengirim,
		RoleTujuan:        params.RoleTujuan,
		Catatan:           params.Catatan,
	}

	if err := u.rekapRepo.Create(rekap); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}

	if u.gateway != nil {
		err := u.gateway.Kirim(&model.Notifikasi{
			RoleTujuan:  params.RoleTujuan,
			TipeEvent:   model.EventRecapReceived,
			RekapID:     &rekap.ID,
			NamaPetugas: params.NamaPengirim,
			Pesan:       fmt.Sprintf("Rekap %s dari %s (%d inspeksi)", rekap.Judul, rekap.NamaPengirim, rekap.TotalInspeksi),
		})
		if err != nil {
			log.Printf("Gagal kirim notifikasi rekap %d: %v", rekap.ID, err)
		}
	}

	return rekap, nil
}

// MarkRead menandai rekap terbaca atas nama role penerima. Rekap milik role
// lain diperlakukan seperti tidak ada. Idempotent: panggilan kedua tidak
// mengubah ReadAt yang sudah tersimpan.
func (u *RekapUsecase) MarkRead(rekapID uint, roleTujuan string) (*model.Rekap, error) {
	_, err := u.rekapRepo.MarkRead(rekapID, roleTujuan, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}

	rekap, err := u.rekapRepo.GetByID(rekapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rekap %d", apperr.ErrNotFound, rekapID)
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}
	if rekap.RoleTujuan != roleTujuan {
		return nil, fmt.Errorf("%w: rekap %d", apperr.ErrNotFound, rekapID)
	}
	return rekap, nil
}
