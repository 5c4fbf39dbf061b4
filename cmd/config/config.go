package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Backend     BackendConfig
	Store       StoreConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Bridge      BridgeConfig
	Otp         OtpConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type BackendConfig struct {
	DefaultBaseURL    string
	DefaultClinicName string
	DevHostURI        string
	DevAPIPort        int
	HTTPTimeout       time.Duration
}

type StoreConfig struct {
	Driver        string
	FilePath      string
	EncryptionKey string
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Queue    string
}

type BridgeConfig struct {
	APIKey string
}

type OtpConfig struct {
	CooldownFallback time.Duration
}

// Load reads configuration from the environment. A .env file in the working directory is
// loaded first when present; variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8085"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Backend: BackendConfig{
			DefaultBaseURL:    getEnv("BACKEND_DEFAULT_URL", ""),
			DefaultClinicName: getEnv("BACKEND_DEFAULT_CLINIC", ""),
			DevHostURI:        getEnv("BACKEND_DEV_HOST_URI", ""),
			DevAPIPort:        getInt("BACKEND_DEV_API_PORT", 4173),
			HTTPTimeout:       getDuration("BACKEND_HTTP_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			Driver:        strings.ToLower(getEnv("STORE_DRIVER", "memory")),
			FilePath:      getEnv("STORE_FILE_PATH", "clinic-companion.store"),
			EncryptionKey: getEnv("STORE_ENCRYPTION_KEY", ""),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getInt("REDIS_PORT", 6379),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "clinic-companion:"),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			Queue:    getEnv("RABBITMQ_QUEUE", "clinic_public_events"),
		},
		Bridge: BridgeConfig{
			APIKey: getEnv("BRIDGE_API_KEY", ""),
		},
		Otp: OtpConfig{
			CooldownFallback: time.Duration(getInt("OTP_COOLDOWN_FALLBACK_SECONDS", 30)) * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
