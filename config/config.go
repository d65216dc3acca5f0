package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ tệp `.env`
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// GetEnv lấy giá trị biến môi trường
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lấy giá trị biến môi trường, trả về fallback khi rỗng
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
