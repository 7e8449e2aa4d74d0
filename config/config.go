package config

import (
	"log"
	"os"
	"strconv"

	"stay/services"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// LoadFees đọc cấu hình phí dịch vụ và thuế từ biến môi trường,
// thiếu biến nào dùng mặc định của biến đó
func LoadFees() services.Fees {
	fees := services.DefaultFees()
	if v := os.Getenv("SERVICE_FEE_PER_NIGHT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			fees.ServiceFeePerNight = parsed
		}
	}
	if v := os.Getenv("FLAT_BOOKING_FEE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			fees.FlatBookingFee = parsed
		}
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			fees.TaxRate = parsed
		}
	}
	return fees
}
