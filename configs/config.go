package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "4000"
	defaultDBHost       = "cluster0.d18ofon.mongodb.net"
	defaultDBName       = "precisionMartial"
	defaultTokenTTL     = time.Hour
	defaultFolder       = "precision_martial_classes"
	defaultPingSchedule = "@every 5m"
)

type Config struct {
	Port string

	MongoURI string
	DBUser   string
	DBPass   string
	DBHost   string
	DBName   string

	AccessTokenSecret string
	TokenTTL          time.Duration

	PaymentSecretKey string

	CloudinaryURL    string
	CloudinaryFolder string

	AllowOrigins      string
	StorePingSchedule string
}

// Load reads .env when present and falls back to the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			log.Printf("⚠️ Ignoring invalid TOKEN_TTL %q, using %s", raw, defaultTokenTTL)
		} else {
			ttl = parsed
		}
	}

	return Config{
		Port:              getEnv("PORT", defaultPort),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            getEnv("DB_HOST", defaultDBHost),
		DBName:            getEnv("DB_NAME", defaultDBName),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenTTL:          ttl,
		PaymentSecretKey:  os.Getenv("PAYMENT_SECRET_KEY"),
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder:  getEnv("CLOUDINARY_FOLDER", defaultFolder),
		AllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", "*"),
		StorePingSchedule: getEnv("STORE_PING_SCHEDULE", defaultPingSchedule),
	}
}

// StoreURI returns MONGODB_URI verbatim, or the Atlas SRV URI built from the
// DB_USER/DB_PASS credentials.
func (c Config) StoreURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
