package usecase

import (
	"fmt"
	"log"
	"time"

	"inspeksi-backend/config"
	"inspeksi-backend/internal/apperr"
	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo *repository.UserRepository
}

func NewUserUsecase(repo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(nama, nip, password, role, jabatan string) error {
	switch role {
	case model.RolePetugas, model.RoleManagerTraffic, model.RoleManagerOperational:
	default:
		return fmt.Errorf("%w: role %s tidak dikenal", apperr.ErrValidation, role)
	}

	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 2. Simpan ke Database
	user := model.User{
		Nama:     nama,
		NIP:      nip,
		Password: string(hashedPassword),
		Role:     role,
		Jabatan:  jabatan,
		IsActive: true,
	}
	return u.repo.Create(user)
}

// Login memverifikasi password lalu menerbitkan JWT berisi nip + role.
// Token FCM perangkat ikut disimpan untuk push notification.
func (u *UserUsecase) Login(nip, password, firebaseToken string) (string, string, error) {
	user, err := u.repo.GetByNIP(nip)
	if err != nil {
		return "", "", err // User tidak ditemukan
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", err // Password salah
	}

	if firebaseToken != "" && firebaseToken != user.FirebaseToken {
		if err := u.repo.UpdateFirebaseToken(nip, firebaseToken); err != nil {
			log.Printf("Gagal simpan token FCM untuk %s: %v", nip, err)
		}
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"nip":     user.NIP,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token expired dalam 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		return "", "", err
	}

	return t, user.Nama, nil
}
