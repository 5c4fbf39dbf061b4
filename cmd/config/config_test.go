package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/clinic-companion/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("BACKEND_DEFAULT_URL", "https://api.clinic.test")
	t.Setenv("BACKEND_DEV_API_PORT", "not-a-number")
	t.Setenv("STORE_DRIVER", "REDIS")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("OTP_COOLDOWN_FALLBACK_SECONDS", "45")

	cfg := config.Load()

	assert.Equal(t, "https://api.clinic.test", cfg.Backend.DefaultBaseURL)
	assert.Equal(t, 4173, cfg.Backend.DevAPIPort)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.Otp.CooldownFallback)
	assert.Equal(t, "clinic_public_events", cfg.RabbitMQ.Queue)
}
