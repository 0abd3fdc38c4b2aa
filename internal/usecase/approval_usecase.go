package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/notification"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/validation"

	"gorm.io/gorm"
)

type aksi string

const (
	aksiSubmit             aksi = "SUBMIT"
	aksiApproveTraffic     aksi = "APPROVE_TRAFFIC"
	aksiApproveOperational aksi = "APPROVE_OPERATIONAL"
	aksiReject             aksi = "REJECT"
)

// Tabel transisi status. Semua edge yang sah ada di sini; kombinasi lain
// (termasuk aksi apapun pada status terminal) ditolak sebelum menyentuh
// database.
var transisi = map[string]map[aksi]string{
	model.StatusDraft: {
		aksiSubmit: model.StatusSubmitted,
	},
	model.StatusSubmitted: {
		aksiApproveTraffic: model.StatusApprovedByTraffic,
		aksiReject:         model.StatusRejected,
	},
	model.StatusApprovedByTraffic: {
		aksiApproveOperational: model.StatusApprovedByOperational,
		aksiReject:             model.StatusRejected,
	},
}

// ApprovalUsecase adalah satu-satunya pihak yang boleh mengubah status
// inspeksi. Setiap transisi memakai UPDATE bersyarat di repository, lalu
// mengirim notifikasi best-effort setelah mutasi berhasil.
type ApprovalUsecase struct {
	inspeksiRepo repository.InspeksiRepository
	gateway      notification.Gateway
}

func NewApprovalUsecase(inspeksiRepo repository.InspeksiRepository, gateway notification.Gateway) *ApprovalUsecase {
	return &ApprovalUsecase{inspeksiRepo: inspeksiRepo, gateway: gateway}
}

// Create membuat inspeksi baru sebagai DRAFT, atau langsung SUBMITTED kalau
// petugas memilih kirim langsung dari form terakhir.
func (u *ApprovalUsecase) Create(inspeksi *model.Inspeksi, langsungSubmit bool) (*model.Inspeksi, error) {
	if langsungSubmit {
		if err := validation.ValidasiSubmit(inspeksi); err != nil {
			return nil, err
		}
		inspeksi.Status = model.StatusSubmitted
	} else {
		if err := validation.ValidasiInspeksi(inspeksi); err != nil {
			return nil, err
		}
		inspeksi.Status = model.StatusDraft
	}

	if inspeksi.TanggalInspeksi.IsZero() {
		inspeksi.TanggalInspeksi = time.Now()
	}

	// Metadata approval/penolakan tidak boleh ikut terisi dari payload klien
	inspeksi.ApprovedByTraffic = ""
	inspeksi.ApprovedAtTraffic = nil
	inspeksi.TTDManagerTraffic = ""
	inspeksi.ApprovedByOperational = ""
	inspeksi.ApprovedAtOperational = nil
	inspeksi.TTDManagerOperational = ""
	inspeksi.RejectedBy = ""
	inspeksi.RejectedAt = nil
	inspeksi.AlasanPenolakan = ""

	if err := u.inspeksiRepo.Create(inspeksi); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}

	if inspeksi.Status == model.StatusSubmitted {
		u.kirimNotifikasi(&model.Notifikasi{
			RoleTujuan:  model.RoleManagerTraffic,
			TipeEvent:   model.EventNewSubmission,
			InspeksiID:  &inspeksi.ID,
			Kategori:    inspeksi.Kategori,
			NoPolisi:    inspeksi.NoPolisi,
			NamaPetugas: inspeksi.NamaPetugas1,
			Pesan:       fmt.Sprintf("Inspeksi %s %s menunggu persetujuan", inspeksi.Kategori, inspeksi.NoPolisi),
		})
	}

	return inspeksi, nil
}

// Submit memindahkan DRAFT menjadi SUBMITTED. Hanya petugas yang tercantum
// pada laporan yang boleh mengirim.
func (u *ApprovalUsecase) Submit(id uint, nipPetugas string) (*model.Inspeksi, error) {
	inspeksi, err := u.getByID(id)
	if err != nil {
		return nil, err
	}

	if inspeksi.NIPPetugas1 != nipPetugas && inspeksi.NIPPetugas2 != nipPetugas {
		return nil, fmt.Errorf("%w: bukan petugas pada laporan ini", apperr.ErrValidation)
	}
	if err := validation.ValidasiSubmit(inspeksi); err != nil {
		return nil, err
	}

	updated, err := u.transisikan(inspeksi, aksiSubmit, map[string]interface{}{
		"status": model.StatusSubmitted,
	})
	if err != nil {
		return nil, err
	}

	u.kirimNotifikasi(&model.Notifikasi{
		RoleTujuan:  model.RoleManagerTraffic,
		TipeEvent:   model.EventNewSubmission,
		InspeksiID:  &updated.ID,
		Kategori:    updated.Kategori,
		NoPolisi:    updated.NoPolisi,
		NamaPetugas: updated.NamaPetugas1,
		Pesan:       fmt.Sprintf("Inspeksi %s %s menunggu persetujuan", updated.Kategori, updated.NoPolisi),
	})

	return updated, nil
}

// ApproveByTraffic: SUBMITTED -> APPROVED_BY_TRAFFIC
func (u *ApprovalUsecase) ApproveByTraffic(id uint, approverNIP, ttdRef string) (*model.Inspeksi, error) {
	if strings.TrimSpace(ttdRef) == "" {
		return nil, fmt.Errorf("%w: tanda tangan manager traffic wajib", apperr.ErrValidation)
	}

	inspeksi, err := u.getByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := u.transisikan(inspeksi, aksiApproveTraffic, map[string]interface{}{
		"status":              model.StatusApprovedByTraffic,
		"approved_by_traffic": approverNIP,
		"approved_at_traffic": now,
		"ttd_manager_traffic": ttdRef,
	})
	if err != nil {
		return nil, err
	}

	u.kirimNotifikasi(&model.Notifikasi{
		RoleTujuan:  model.RoleManagerOperational,
		TipeEvent:   model.EventApprovedByTraffic,
		InspeksiID:  &updated.ID,
		Kategori:    updated.Kategori,
		NoPolisi:    updated.NoPolisi,
		NamaPetugas: updated.NamaPetugas1,
		Pesan:       fmt.Sprintf("Inspeksi %s %s menunggu persetujuan operational", updated.Kategori, updated.NoPolisi),
	})

	return updated, nil
}

// ApproveByOperational: APPROVED_BY_TRAFFIC -> APPROVED_BY_OPERATIONAL
// (terminal, tidak ada notifikasi lanjutan)
func (u *ApprovalUsecase) ApproveByOperational(id uint, approverNIP, ttdRef string) (*model.Inspeksi, error) {
	if strings.TrimSpace(ttdRef) == "" {
		return nil, fmt.Errorf("%w: tanda tangan manager operational wajib", apperr.ErrValidation)
	}

	inspeksi, err := u.getByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return u.transisikan(inspeksi, aksiApproveOperational, map[string]interface{}{
		"status":                  model.StatusApprovedByOperational,
		"approved_by_operational": approverNIP,
		"approved_at_operational": now,
		"ttd_manager_operational": ttdRef,
	})
}

// Reject menolak laporan secara permanen. Manager traffic hanya bisa menolak
// dari SUBMITTED, manager operational dari APPROVED_BY_TRAFFIC. Record yang
// ditolak tetap tersimpan sebagai jejak audit; perbaikan harus lewat
// laporan baru.
func (u *ApprovalUsecase) Reject(id uint, rejectingRole, alasan string) (*model.Inspeksi, error) {
	if strings.TrimSpace(alasan) == "" {
		return nil, fmt.Errorf("%w: alasan penolakan wajib diisi", apperr.ErrValidation)
	}
	if rejectingRole != model.RejectedByTraffic && rejectingRole != model.RejectedByOperational {
		return nil, fmt.Errorf("%w: role penolak %s tidak dikenal", apperr.ErrValidation, rejectingRole)
	}

	inspeksi, err := u.getByID(id)
	if err != nil {
		return nil, err
	}

	// Edge reject berbeda per role penolak
	expected := model.StatusSubmitted
	if rejectingRole == model.RejectedByOperational {
		expected = model.StatusApprovedByTraffic
	}
	if inspeksi.Status != expected {
		return nil, fmt.Errorf("%w: %s tidak bisa menolak laporan berstatus %s",
			apperr.ErrInvalidState, rejectingRole, inspeksi.Status)
	}

	now := time.Now()
	updated, err := u.transisikan(inspeksi, aksiReject, map[string]interface{}{
		"status":           model.StatusRejected,
		"rejected_by":      rejectingRole,
		"rejected_at":      now,
		"alasan_penolakan": alasan,
	})
	if err != nil {
		return nil, err
	}

	u.kirimNotifikasi(&model.Notifikasi{
		NIPTujuan:   updated.NIPPetugas1,
		TipeEvent:   model.EventRejected,
		InspeksiID:  &updated.ID,
		Kategori:    updated.Kategori,
		NoPolisi:    updated.NoPolisi,
		NamaPetugas: updated.NamaPetugas1,
		Pesan:       fmt.Sprintf("Inspeksi %s %s ditolak: %s", updated.Kategori, updated.NoPolisi, alasan),
	})

	return updated, nil
}

// DeleteDraft menghapus DRAFT milik petugas yang meminta. Laporan yang sudah
// SUBMITTED ke atas tidak pernah dihapus.
func (u *ApprovalUsecase) DeleteDraft(id uint, nipPetugas string) error {
	rows, err := u.inspeksiRepo.DeleteDraft(id, nipPetugas)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}
	if rows > 0 {
		return nil
	}

	inspeksi, err := u.getByID(id)
	if err != nil {
		return err
	}
	if inspeksi.Status != model.StatusDraft {
		return fmt.Errorf("%w: hanya DRAFT yang boleh dihapus", apperr.ErrInvalidState)
	}
	return fmt.Errorf("%w: hanya pembuat yang boleh menghapus draft", apperr.ErrValidation)
}

func (u *ApprovalUsecase) getByID(id uint) (*model.Inspeksi, error) {
	inspeksi, err := u.inspeksiRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: inspeksi %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}
	return inspeksi, nil
}

// transisikan memeriksa tabel transisi lalu menulis lewat UPDATE bersyarat.
// Kalau baris tidak berubah berarti status sudah keburu diubah pihak lain:
// dikembalikan sebagai ErrInvalidState, record tidak tersentuh.
func (u *ApprovalUsecase) transisikan(inspeksi *model.Inspeksi, a aksi, changes map[string]interface{}) (*model.Inspeksi, error) {
	if _, ok := transisi[inspeksi.Status][a]; !ok {
		return nil, fmt.Errorf("%w: aksi %s tidak berlaku untuk status %s",
			apperr.ErrInvalidState, a, inspeksi.Status)
	}

	rows, err := u.inspeksiRepo.UpdateStatusIf(inspeksi.ID, inspeksi.Status, changes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: laporan sudah diproses pihak lain, muat ulang dulu", apperr.ErrInvalidState)
	}

	return u.getByID(inspeksi.ID)
}

// kirimNotifikasi: best-effort, error hanya dicatat supaya kegagalan
// notifikasi tidak pernah membatalkan transisi yang sudah tersimpan
func (u *ApprovalUsecase) kirimNotifikasi(notifikasi *model.Notifikasi) {
	if u.gateway == nil {
		return
	}
	if err := u.gateway.Kirim(notifikasi); err != nil {
		log.Printf("Gagal kirim notifikasi %s untuk inspeksi: %v", notifikasi.TipeEvent, err)
	}
}
