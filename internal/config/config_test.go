package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "loud"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "waitlist", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=waitlist sslmode=disable", p.DSN())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "memory needs nothing",
			cfg:  Config{Storage: StorageConfig{Entries: StorageMemory}},
		},
		{
			name:    "redis without addr",
			cfg:     Config{Storage: StorageConfig{Entries: StorageRedis}, Postgres: PostgresConfig{Host: "db"}},
			wantErr: true,
		},
		{
			name: "redis with addr",
			cfg: Config{
				Storage:  StorageConfig{Entries: StorageRedis},
				Postgres: PostgresConfig{Host: "db"},
				Redis:    RedisConfig{Addr: "cache:6379"},
			},
		},
		{
			name:    "postgres without host",
			cfg:     Config{Storage: StorageConfig{Entries: StoragePostgres}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
