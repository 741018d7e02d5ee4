package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Settings is the runtime configuration of order-svc, read from the environment.
type Settings struct {
	Port             string
	MessagingBaseURL string
	Recipient        string
	DeliveryFee      float64
	CatalogSource    string
	CatalogPath      string
	Timezone         string
	SessionTTL       time.Duration
	GeocoderURL      string
	GeocoderTimeout  time.Duration
	KafkaBroker      string
	CheckoutTopic    string
	RestrictQRLinks  bool
	AllowedOrigins   []string
	LogLevel         string
	LogFormat        string
	Environment      string
}

func Load() Settings {
	return Settings{
		Port:             GetEnv("PORT", "8084"),
		MessagingBaseURL: GetEnv("MESSAGING_BASE_URL", "https://wa.me"),
		Recipient:        GetEnv("MESSAGING_RECIPIENT", "9613502022"),
		DeliveryFee:      getFloat("DELIVERY_FEE", 1.5),
		CatalogSource:    GetEnv("CATALOG_SOURCE", "file"),
		CatalogPath:      GetEnv("CATALOG_PATH", "order-svc/data/menu.json"),
		Timezone:         GetEnv("TIMEZONE", "Local"),
		SessionTTL:       getDuration("SESSION_TTL", 30*24*time.Hour),
		GeocoderURL:      GetEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org/reverse"),
		GeocoderTimeout:  getDuration("GEOCODER_TIMEOUT", 5*time.Second),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		CheckoutTopic:    GetEnv("CHECKOUT_TOPIC", "order-links"),
		RestrictQRLinks:  GetEnv("QR_RESTRICT_LINKS", "true") == "true",
		AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		LogFormat:        GetEnv("LOG_FORMAT", "json"),
		Environment:      GetEnv("ENVIRONMENT", "development"),
	}
}

// Location resolves the configured timezone, falling back to time.Local.
func (s Settings) Location() *time.Location {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		log.Printf("WARN: unknown timezone %q, using local time", s.Timezone)
		return time.Local
	}
	return loc
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("WARN: invalid %s=%q, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("WARN: invalid %s=%q, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=" + GetEnv("DB_SSL_MODE", "disable")

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured; checkout events are optional.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
