package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	"go-payroll/internal/report"
	"go-payroll/internal/salarypayment"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/vendorpayment"
	"go-payroll/internal/vendors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	store, err := newDocumentStore(cfg, logger)
	if err != nil {
		return err
	}

	organizationRepo := organization.NewRepository(gormDB)
	notifier := notification.NewOutboxNotifier(kafka.NewOutboxRepository(sqlDB), logger)
	reportService := report.NewService(report.Deps{
		Organizations:     organizationRepo,
		Employees:         employee.NewRepository(gormDB),
		SalaryPayments:    salarypayment.NewRepository(gormDB),
		VendorPaymentRepo: vendorpayment.NewRepository(gormDB),
		Vendors:           vendors.NewRepository(gormDB),
		Store:             store,
	}, logger)

	var sender notification.Sender
	if cfg.SMTPEnabled() {
		sender = notification.NewSMTPSender(cfg.SMTP)
	} else {
		logger.Warn("SMTP not configured, notifications will only be logged")
		sender = notification.NewLogSender(logger)
	}

	notificationReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.NotificationRequestedTopic,
		GroupID:        "go-payroll-notification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer notificationReader.Close()

	batchReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.SalaryBatchCompletedTopic,
		GroupID:        "go-payroll-salary-register",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer batchReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeNotifications(ctx, notificationReader, sender, logger)
	go consumer.ConsumeSalaryBatchCompleted(ctx, batchReader, reportService, organizationRepo, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
