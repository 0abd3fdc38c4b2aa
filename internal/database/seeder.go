package database

import (
	"log"

	"inspeksi-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// Satu akun per role untuk uji coba awal
	akun := []struct {
		Nama     string
		NIP      string
		Role     string
		Jabatan  string
		Password string
	}{
		{"Budi Santoso", "PTG-001", model.RolePetugas, "Petugas Lapangan", "petugas123"},
		{"Siti Rahayu", "PTG-002", model.RolePetugas, "Petugas Lapangan", "petugas123"},
		{"Agus Wijaya", "MGR-T1", model.RoleManagerTraffic, "Manager Traffic", "manager123"},
		{"Dewi Lestari", "MGR-O1", model.RoleManagerOperational, "Manager Operational", "manager123"},
	}

	for _, a := range akun {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Gagal hash password untuk %s: %v", a.NIP, err)
			continue
		}

		user := model.User{
			Nama:     a.Nama,
			NIP:      a.NIP,
			Password: string(hashedPassword),
			Role:     a.Role,
			Jabatan:  a.Jabatan,
			IsActive: true,
		}
		db.FirstOrCreate(&user, model.User{NIP: a.NIP})
	}

	log.Println("Seeding user selesai")
}
