package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/gangnam4")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("EMAIL_MANAGER_ADDRESS", "manager@example.com")
	t.Setenv("EMAIL_SMTP_USERNAME", "noreply@example.com")
	t.Setenv("EMAIL_SMTP_PASSWORD", "smtp-secret")
	t.Setenv("EMAIL_SMTP_HOST", "smtp.example.com")
	t.Setenv("RABBITMQ_DSN", "amqp://localhost")
	t.Setenv("REDIS_PASSWORD", "redis-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.QueryTimeout)
	assert.Equal(t, 5, cfg.Admin.MaxAttempts)
	assert.Equal(t, 43200, cfg.JWT.Expiration)
	assert.Equal(t, 465, cfg.Email.SMTP.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv 가 원래 값 복원을 등록해 둔 상태에서 지운다
	os.Unsetenv("DATABASE_DSN")

	_, err := LoadConfig()
	assert.Error(t, err)
}

// 파싱 에러가 조용히 삼켜지면 제로값 설정으로 기동해 버린다.
func TestLoadConfigInvalidValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "많이")

	_, err := LoadConfig()
	assert.Error(t, err)
}
