package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func validConfig() *Config {
	return &Config{
		Paystack: PaystackConfig{SecretKey: "sk_test_gateway"},
		Tickets:  TicketsConfig{Secret: "ticket-secret-0123456789"},
		Auth:     AuthConfig{JWTSecret: "jwt-secret"},
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	shared := validConfig()
	shared.Tickets.Secret = shared.Paystack.SecretKey
	assert.ErrorIs(t, shared.Validate(), ErrSharedSecret)

	jwtReuse := validConfig()
	jwtReuse.Auth.JWTSecret = jwtReuse.Tickets.Secret
	assert.Error(t, jwtReuse.Validate())
}

func TestKafkaConfig_BrokerList(t *testing.T) {
	assert.Empty(t, KafkaConfig{}.BrokerList())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, KafkaConfig{Brokers: " k1:9092, ,k2:9092 "}.BrokerList())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "bogus"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "eventful", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=eventful sslmode=disable", p.DSN())
}
