package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Reconcile ReconcileConfig `yaml:"reconcile" validate:"required"`
	Paystack  PaystackConfig  `yaml:"paystack"  validate:"required"`
	Tickets   TicketsConfig   `yaml:"tickets"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eventful"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ReconcileConfig struct {
	Interval     time.Duration `yaml:"interval"      env:"RECONCILE_INTERVAL"      env-default:"1m"  validate:"required,gt=0"`
	PendingTTL   time.Duration `yaml:"pending_ttl"   env:"RECONCILE_PENDING_TTL"   env-default:"30m" validate:"required,gt=0"`
	SettledGrace time.Duration `yaml:"settled_grace" env:"RECONCILE_SETTLED_GRACE" env-default:"2m"  validate:"required,gt=0"`
	BatchSize    int           `yaml:"batch_size"    env:"RECONCILE_BATCH_SIZE"    env-default:"100" validate:"min=1"`
}

// PaystackConfig holds the gateway secret. The same key authenticates
// outbound API calls and signs inbound webhooks.
type PaystackConfig struct {
	SecretKey   string        `yaml:"secret_key"   env:"PAYSTACK_SECRET_KEY"   validate:"required"`
	BaseURL     string        `yaml:"base_url"     env:"PAYSTACK_BASE_URL"     env-default:"https://api.paystack.co"`
	CallbackURL string        `yaml:"callback_url" env:"PAYSTACK_CALLBACK_URL"`
	Timeout     time.Duration `yaml:"timeout"      env:"PAYSTACK_TIMEOUT"      env-default:"10s" validate:"gt=0"`
}

type TicketsConfig struct {
	Secret string `yaml:"secret" env:"TICKET_SECRET" validate:"required,min=16"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" validate:"required"`
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"   env:"TELEGRAM_BOT_TOKEN"   env-default:""`
	OpsChatID int64  `yaml:"ops_chat_id" env:"TELEGRAM_OPS_CHAT_ID" env-default:"0"`
}

// RedisConfig: an empty URL disables analytics cache invalidation.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:""`
}

// KafkaConfig: no brokers means domain events are only logged.
type KafkaConfig struct {
	Brokers      string        `yaml:"brokers"       env:"KAFKA_BROKERS"       env-default:""`
	TopicPrefix  string        `yaml:"topic_prefix"  env:"KAFKA_TOPIC_PREFIX"  env-default:"eventful."`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"5s"`
}

func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

var ErrSharedSecret = errors.New("ticket secret must differ from the gateway secret")

// Validate checks constraints the struct tags cannot express.
func (c *Config) Validate() error {
	if c.Tickets.Secret == c.Paystack.SecretKey {
		return ErrSharedSecret
	}
	if c.Auth.JWTSecret == c.Tickets.Secret || c.Auth.JWTSecret == c.Paystack.SecretKey {
		return errors.New("jwt secret must not reuse the gateway or ticket secret")
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
