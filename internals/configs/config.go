// file: internals/configs/config.go
package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	GeminiAPIKey string
	GeminiModel  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	GeminiAPIKey = GetEnv("GEMINI_API_KEY")
	GeminiModel = GetEnv("GEMINI_MODEL", "gemini-2.5-flash")

	if GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY belum diset — generator narasi AI nonaktif.")
	} else {
		log.Println("✅ GEMINI_API_KEY berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
