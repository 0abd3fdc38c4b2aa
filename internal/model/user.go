package model

import "gorm.io/gorm"

// Role pengguna sistem inspeksi
const (
	RolePetugas            = "PETUGAS"
	RoleManagerTraffic     = "MANAGER_TRAFFIC"
	RoleManagerOperational = "MANAGER_OPERATIONAL"
)

type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	NIP      string `json:"nip" gorm:"column:nip;unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"index;not null"` // PETUGAS / MANAGER_TRAFFIC / MANAGER_OPERATIONAL
	Jabatan  string `json:"jabatan"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Token FCM perangkat terakhir untuk push notification
	FirebaseToken string `json:"-"`
}
