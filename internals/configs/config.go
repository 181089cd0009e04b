package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	DatabaseURL string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded!")
	}

	DatabaseURL = GetEnv("DATABASE_URL")
	if DatabaseURL == "" {
		log.Fatal("❌ DATABASE_URL not set! The server cannot run without a database.")
	}
	log.Println("✅ DATABASE_URL loaded.")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
