package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsien-prestige/Eventful-Backend/internal/cache"
	"github.com/nsien-prestige/Eventful-Backend/internal/config"
	"github.com/nsien-prestige/Eventful-Backend/internal/events"
	"github.com/nsien-prestige/Eventful-Backend/internal/gateway/paystack"
	"github.com/nsien-prestige/Eventful-Backend/internal/notification"
	"github.com/nsien-prestige/Eventful-Backend/internal/repository"
	"github.com/nsien-prestige/Eventful-Backend/internal/service"
	"github.com/nsien-prestige/Eventful-Backend/internal/service/ports"
	"github.com/nsien-prestige/Eventful-Backend/internal/signing"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

// Core is the settlement core with its stores and side channels, shared by
// the HTTP server and the operator CLI.
type Core struct {
	Payments   *repository.PaymentRepository
	Checkout   *service.CheckoutService
	Settlement *service.SettlementProcessor
	Validator  *service.TicketValidator
	Reconciler *service.Reconciler

	closers []func() error
}

// OpenDB connects to Postgres and pings it.
func OpenDB(ctx context.Context, cfg config.PostgresConfig, log logger.Logger) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Master.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
		logger.String("database", cfg.Database),
	)
	return db, nil
}

// Migrate applies the goose migrations found in dir.
func Migrate(dsn, dir string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func NewCore(ctx context.Context, cfg *config.Config, db *dbpg.DB, log logger.Logger) (*Core, error) {
	webhookSigner, err := signing.NewSHA512(cfg.Paystack.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("webhook signer: %w", err)
	}
	ticketSigner, err := signing.NewSHA256(cfg.Tickets.Secret)
	if err != nil {
		return nil, fmt.Errorf("ticket signer: %w", err)
	}

	core := &Core{}

	notifier, err := notification.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.OpsChatID, log)
	if err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	var analytics ports.AnalyticsCache = cache.NopAnalyticsCache{}
	if cfg.Redis.URL != "" {
		rdb, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		core.closers = append(core.closers, rdb.Close)
		analytics = cache.NewRedisAnalyticsCache(rdb)
	} else {
		log.Warn("redis url is empty, analytics cache invalidation disabled")
	}

	var publisher ports.EventPublisher = events.NewLoggingPublisher(log)
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		kp, err := events.NewKafkaPublisher(brokers, cfg.Kafka.TopicPrefix, cfg.Kafka.WriteTimeout)
		if err != nil {
			_ = core.Close(ctx)
			return nil, fmt.Errorf("init kafka publisher: %w", err)
		}
		core.closers = append(core.closers, kp.Close)
		publisher = kp
	}

	gateway := paystack.NewClient(cfg.Paystack.SecretKey, paystack.Options{
		BaseURL:     cfg.Paystack.BaseURL,
		CallbackURL: cfg.Paystack.CallbackURL,
		Timeout:     cfg.Paystack.Timeout,
	}, log)

	paymentRepo := repository.NewPaymentRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)
	eventRepo := repository.NewEventRepo(db)
	userRepo := repository.NewUserRepo(db)

	ledger := service.NewCapacityLedger(admissionRepo, ticketSigner, log)
	processor := service.NewSettlementProcessor(
		paymentRepo, admissionRepo, eventRepo, userRepo,
		ledger,
		webhookSigner,
		service.Sinks{Notifier: notifier, Publisher: publisher, Cache: analytics},
		log,
	)

	core.Payments = paymentRepo
	core.Settlement = processor
	core.Validator = service.NewTicketValidator(admissionRepo, eventRepo, ledger, log)
	core.Checkout = service.NewCheckoutService(paymentRepo, admissionRepo, eventRepo, userRepo, gateway, ledger, log)
	core.Reconciler = service.NewReconciler(paymentRepo, gateway, processor, service.ReconcileOptions{
		PendingTTL:   cfg.Reconcile.PendingTTL,
		SettledGrace: cfg.Reconcile.SettledGrace,
		BatchSize:    cfg.Reconcile.BatchSize,
	}, log)

	return core, nil
}

// Close waits for pending settlement side effects, then releases the broker
// and cache connections. The database is owned by the caller.
func (c *Core) Close(ctx context.Context) error {
	var errs []error
	if c.Settlement != nil {
		if err := c.Settlement.Drain(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
