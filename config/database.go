package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Các môi trường triển khai được hỗ trợ; biến kết nối đặt theo tiền tố
// DEV_/QC_/PROD_ (ví dụ DEV_DB_HOST, PROD_DB_NAME)
var supportedEnvs = map[string]bool{
	"dev":  true,
	"qc":   true,
	"prod": true,
}

func buildDSN(env string) string {
	if !supportedEnvs[env] {
		log.Fatalf("Môi trường không hỗ trợ: %q (cần dev, qc hoặc prod)", env)
	}

	prefix := strings.ToUpper(env) + "_DB_"
	get := func(key string) string {
		return os.Getenv(prefix + key)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		get("HOST"), get("USER"), get("PASSWORD"), get("NAME"), get("PORT"),
	)
}

// ConnectDB mở kết nối Postgres theo biến ENV và gán vào DB dùng chung
func ConnectDB() {
	var err error
	dsn := buildDSN(os.Getenv("ENV"))

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Không kết nối được database: %v", err)
	}

	log.Println("Kết nối database thành công")
}
