package config

import (
	"errors"
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Storage      StorageConfig      `yaml:"storage"      validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"`
	Redis        RedisConfig        `yaml:"redis"`
	Lottery      LotteryConfig      `yaml:"lottery"      validate:"required"`
	Notification NotificationConfig `yaml:"notification" validate:"required"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

var logLevels = map[string]logger.Level{
	"debug": logger.DebugLevel,
	"info":  logger.InfoLevel,
	"warn":  logger.WarnLevel,
	"error": logger.ErrorLevel,
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	if lvl, ok := logLevels[c.Level]; ok {
		return lvl
	}
	return logger.InfoLevel
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"waitlist"     validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

const (
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// StorageConfig selects where waitlist entries and lottery rounds live.
// Events, entrants and the notification inbox stay in postgres unless
// everything runs in memory.
type StorageConfig struct {
	Entries string `yaml:"entries" env:"STORAGE_ENTRIES" env-default:"postgres" validate:"required,oneof=postgres redis memory"`
}

// UsesPostgres reports whether a database connection is needed.
func (s StorageConfig) UsesPostgres() bool {
	return s.Entries != StorageMemory
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0" validate:"min=0"`
}

type LotteryConfig struct {
	MaxExtraAttempts   int           `yaml:"max_extra_attempts"  env:"LOTTERY_MAX_EXTRA_ATTEMPTS"  env-default:"5"   validate:"min=0"`
	DrawTimeout        time.Duration `yaml:"draw_timeout"        env:"LOTTERY_DRAW_TIMEOUT"        env-default:"30s" validate:"gt=0"`
	ReplacementTimeout time.Duration `yaml:"replacement_timeout" env:"LOTTERY_REPLACEMENT_TIMEOUT" env-default:"15s" validate:"gt=0"`
}

type NotificationConfig struct {
	Workers       int           `yaml:"workers"         env:"NOTIFY_WORKERS"         env-default:"4"    validate:"min=1"`
	QueueSize     int           `yaml:"queue_size"      env:"NOTIFY_QUEUE_SIZE"      env-default:"1024" validate:"min=0"`
	SendTimeout   time.Duration `yaml:"send_timeout"    env:"NOTIFY_SEND_TIMEOUT"    env-default:"5s"   validate:"gt=0"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"NOTIFY_RATE_PER_SECOND" env-default:"25"   validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// Validate checks rules that span sections.
func (c *Config) Validate() error {
	if c.Storage.Entries == StorageRedis && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when storage.entries is redis")
	}
	if c.Storage.UsesPostgres() && c.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required when storage.entries is %s", c.Storage.Entries)
	}
	return nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
