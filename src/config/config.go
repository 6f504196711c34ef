package config

import (
	"fmt"
	"os"
	"time"
)

// const dsn = "host=localhost user=postgres password=password dbname=happyhomes port=5432 sslmode=disable TimeZone=Asia/Manila"

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func FrontendURL() string {
	return GetEnv("FRONTEND_URL", "http://localhost:3000")
}

func MailFrom() string {
	return GetEnv("MAIL_FROM", "no-reply@happyhomes.local")
}

func MailFromName() string {
	return GetEnv("MAIL_FROM_NAME", "Happy Homes Admin")
}

// MailTransport is one of smtp, ses or log.
func MailTransport() string {
	return GetEnv("MAIL_TRANSPORT", "log")
}

const (
	DATE_FORMAT        = "2006-01-02"
	CLOCK_FORMAT       = "15:04"
	CLOCK_FORMAT_SECS  = "15:04:05"
	LONG_DATE_FORMAT   = "January 02, 2006"
	TWELVE_HOUR_FORMAT = "03:04 PM"
)

const VERIFICATION_CODE_TTL = 5 * time.Minute
