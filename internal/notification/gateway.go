// Package notification menyalurkan event approval ke penerimanya.
// Pengiriman bersifat best-effort: kegagalan di sini tidak boleh membatalkan
// transisi status yang sudah tersimpan.
package notification

import (
	"fmt"
	"log"
	"strconv"

	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/repository"
)

// Gateway adalah kontrak yang dipakai usecase untuk semua notifikasi
type Gateway interface {
	Kirim(notifikasi *model.Notifikasi) error
}

// InboxGateway menyimpan notifikasi sebagai inbox di database lalu fan-out
// push FCM ke setiap perangkat penerima. Error push hanya dicatat di log.
type InboxGateway struct {
	notifikasiRepo repository.NotifikasiRepository
	userRepo       *repository.UserRepository
	fcm            *FCMSender
}

func NewInboxGateway(notifikasiRepo repository.NotifikasiRepository, userRepo *repository.UserRepository, fcm *FCMSender) *InboxGateway {
	return &InboxGateway{notifikasiRepo: notifikasiRepo, userRepo: userRepo, fcm: fcm}
}

func (g *InboxGateway) Kirim(notifikasi *model.Notifikasi) error {
	if notifikasi.NIPTujuan == "" && notifikasi.RoleTujuan == "" {
		return fmt.Errorf("notifikasi tanpa tujuan")
	}

	if err := g.notifikasiRepo.Create(notifikasi); err != nil {
		return err
	}

	g.kirimPush(notifikasi)
	return nil
}

func (g *InboxGateway) kirimPush(notifikasi *model.Notifikasi) {
	if g.fcm == nil {
		return
	}

	var penerima []model.User
	if notifikasi.NIPTujuan != "" {
		user, err := g.userRepo.GetByNIP(notifikasi.NIPTujuan)
		if err != nil {
			log.Printf("Gagal mencari penerima notifikasi %s: %v", notifikasi.NIPTujuan, err)
			return
		}
		penerima = append(penerima, user)
	} else {
		users, err := g.userRepo.ListByRole(notifikasi.RoleTujuan)
		if err != nil {
			log.Printf("Gagal mencari penerima role %s: %v", notifikasi.RoleTujuan, err)
			return
		}
		penerima = users
	}

	data := map[string]string{
		"tipe_event": notifikasi.TipeEvent,
		"kategori":   notifikasi.Kategori,
		"no_polisi":  notifikasi.NoPolisi,
	}
	if notifikasi.InspeksiID != nil {
		data["inspeksi_id"] = strconv.FormatUint(uint64(*notifikasi.InspeksiID), 10)
	}
	if notifikasi.RekapID != nil {
		data["rekap_id"] = strconv.FormatUint(uint64(*notifikasi.RekapID), 10)
	}

	for _, user := range penerima {
		if err := g.fcm.Kirim(user.FirebaseToken, judulEvent(notifikasi.TipeEvent), notifikasi.Pesan, data); err != nil {
			log.Printf("Gagal kirim push ke %s: %v", user.NIP, err)
		}
	}
}

func judulEvent(tipeEvent string) string {
	switch tipeEvent {
	case model.EventNewSubmission:
		return "Inspeksi Baru Menunggu Persetujuan"
	case model.EventApprovedByTraffic:
		return "Inspeksi Menunggu Persetujuan Operational"
	case model.EventRejected:
		return "Inspeksi Ditolak"
	case model.EventRecapReceived:
		return "Rekap Inspeksi Baru"
	}
	return "Notifikasi Inspeksi"
}
