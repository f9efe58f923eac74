package bootstrap_test

import (
	"context"
	"testing"

	"onebiz-payroll/internal/bootstrap"
	"onebiz-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	auditLogger := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithCompanyID(ctx, "company-1")

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_FINALIZED",
		Message: "payroll finalized",
		Meta:    map[string]any{"month": "2024-03"},
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "PAYROLL_FINALIZED", fields["action"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "user-1", fields["user_id"])
		assert.Equal(t, "company-1", fields["company_id"])
	}
}
