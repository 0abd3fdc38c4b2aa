// Package jobs berisi pekerjaan terjadwal di luar siklus request.
package jobs

import (
	"fmt"
	"log"
	"time"

	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/usecase"

	"github.com/robfig/cron/v3"
)

// RekapScheduler membuat rekap HARIAN otomatis untuk inspeksi kemarin dan
// mengirimkannya ke manager traffic setiap pagi.
type RekapScheduler struct {
	cronScheduler *cron.Cron
	rekap         *usecase.RekapUsecase
	pengirimNIP   string
	namaPengirim  string
	jobID         cron.EntryID
}

func NewRekapScheduler(rekap *usecase.RekapUsecase, pengirimNIP, namaPengirim string) *RekapScheduler {
	return &RekapScheduler{
		cronScheduler: cron.New(cron.WithSeconds()),
		rekap:         rekap,
		pengirimNIP:   pengirimNIP,
		namaPengirim:  namaPengirim,
	}
}

// Start menjadwalkan pembuatan rekap harian jam 06:00
func (s *RekapScheduler) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 6 * * *", func() {
		log.Println("Menjalankan rekap harian otomatis")
		s.buatRekapHarian()
	})
	if err != nil {
		return fmt.Errorf("gagal menjadwalkan rekap harian: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Scheduler rekap harian aktif - berjalan setiap jam 06:00")
	return nil
}

func (s *RekapScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *RekapScheduler) buatRekapHarian() {
	kemarin := time.Now().AddDate(0, 0, -1)
	mulai := time.Date(kemarin.Year(), kemarin.Month(), kemarin.Day(), 0, 0, 0, 0, kemarin.Location())
	selesai := mulai.Add(24*time.Hour - time.Second)

	rekap, err := s.rekap.BuatRekap(usecase.BuatRekapParams{
		Judul:          fmt.Sprintf("Rekap Harian %s", mulai.Format("2006-01-02")),
		TipePeriode:    model.PeriodeHarian,
		PeriodeMulai:   mulai,
		PeriodeSelesai: selesai,
		PengirimNIP:    s.pengirimNIP,
		NamaPengirim:   s.namaPengirim,
		RoleTujuan:     model.RoleManagerTraffic,
	})
	if err != nil {
		log.Printf("Gagal membuat rekap harian: %v", err)
		return
	}

	log.Printf("Rekap harian %d dibuat (%d inspeksi)", rekap.ID, rekap.TotalInspeksi)
}
