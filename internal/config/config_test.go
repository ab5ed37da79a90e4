package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_DRIVER", "JWT_TTL", "BCRYPT_COST", "TRUSTED_PROXIES", "CORS_ORIGINS"} {
		// Setenv registers the restore; Unsetenv makes the key absent for this test.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, StoreMySQL, cfg.StoreDriver)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Nil(t, cfg.TrustedProxies)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MongoDB")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,http://192.168.56.10:5173")

	cfg := LoadConfig()

	assert.Equal(t, StoreMongoDB, cfg.StoreDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, []string{"https://app.example.com", "http://192.168.56.10:5173"}, cfg.CORSOrigins)
}

func TestParseList_Empty(t *testing.T) {
	assert.Nil(t, parseList("  "))
	assert.Nil(t, parseList(" , "))
}
