package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"onebiz-payroll/internal/bootstrap"
	"onebiz-payroll/internal/config"
	"onebiz-payroll/internal/events"
	"onebiz-payroll/internal/messaging/kafka/consumer"
	"onebiz-payroll/internal/salaryconfig"
	"onebiz-payroll/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer runs queued bulk payroll requests until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	// Cache is optional here; the consumer reads the store when redis is down.
	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		logger.Warn("redis unavailable, salary configs read uncached", zap.Error(err))
	} else {
		defer redisClient.Close()
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(zap.L())
	configs := salaryconfig.NewService(salaryconfig.NewRepository(gormDB), redisClient, cfg.Payroll.ConfigCacheTTL)
	payrollService := newPayrollService(cfg, sqlDB, gormDB, configs, auditLogger, zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PayrollBulkRequestedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollBulkRequested(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
