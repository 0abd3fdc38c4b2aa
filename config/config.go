package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai usecase login dan middleware auth, harus sama persis
func JWTSecret() string {
	return GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat")
}
