package config_test

import (
	"testing"
	"time"

	"onebiz-payroll/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAYROLL_READ_TIMEOUT", "")
	t.Setenv("PAYROLL_BULK_CONCURRENCY", "")
	t.Setenv("PAYROLL_TIMEZONE", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.Payroll.ReadTimeout)
	assert.Equal(t, 8, cfg.Payroll.BulkConcurrency)
	assert.Equal(t, time.UTC, cfg.Payroll.Location)
	assert.Equal(t, 5*time.Minute, cfg.Payroll.ConfigCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAYROLL_READ_TIMEOUT", "2s")
	t.Setenv("PAYROLL_BULK_CONCURRENCY", "3")
	t.Setenv("PAYROLL_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Payroll.ReadTimeout)
	assert.Equal(t, 3, cfg.Payroll.BulkConcurrency)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Payroll.Location.String())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "PAYROLL_READ_TIMEOUT", value: "soon"},
		{name: "bad int", key: "PAYROLL_BULK_CONCURRENCY", value: "many"},
		{name: "zero concurrency", key: "PAYROLL_BULK_CONCURRENCY", value: "0"},
		{name: "bad timezone", key: "PAYROLL_TIMEZONE", value: "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_OutboxSettings(t *testing.T) {
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
	t.Setenv("OUTBOX_BATCH_SIZE", "10")
	t.Setenv("KAFKA_CONSUMER_GROUP", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Kafka.OutboxPollInterval)
	assert.Equal(t, 10, cfg.Kafka.OutboxBatchSize)
	assert.Equal(t, "onebiz-payroll-bulk", cfg.Kafka.ConsumerGroup)
}
