package salaryconfig_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"onebiz-payroll/internal/salaryconfig"
	salaryconfigerrors "onebiz-payroll/internal/salaryconfig/errors"
	salaryconfigMock "onebiz-payroll/internal/salaryconfig/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cacheTTL = time.Minute

type serviceDeps struct {
	service   salaryconfig.Service
	repo      *salaryconfigMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := salaryconfigMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &serviceDeps{
		service:   salaryconfig.NewService(repo, rdb, cacheTTL),
		repo:      repo,
		redismock: redisMock,
	}
}

func sampleRows(companyID uuid.UUID) []salaryconfig.SalaryConfig {
	return []salaryconfig.SalaryConfig{
		{ID: uuid.New(), CompanyID: companyID, PayType: "monthly", ConfigKey: "standard_work_days", ConfigValue: "26", IsActive: true},
		{ID: uuid.New(), CompanyID: companyID, PayType: "monthly", ConfigKey: "lunch_allowance_per_day", ConfigValue: "30000", IsActive: true},
	}
}

func TestSalaryConfigService_GetSalaryConfigs(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	key := salaryconfig.GetCacheKey(companyID, "monthly")

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		rows := sampleRows(companyUUID)
		payload, _ := json.Marshal(rows)

		deps.redismock.ExpectGet(key).SetVal(string(payload))

		got, err := deps.service.GetSalaryConfigs(ctx, companyID, "monthly")

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "standard_work_days", got[0].ConfigKey)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		rows := sampleRows(companyUUID)
		payload, _ := json.Marshal(rows)

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindActiveByPayType(gomock.Any(), companyID, "monthly").Return(rows, nil)
		deps.redismock.ExpectSet(key, string(payload), cacheTTL).SetVal("OK")

		got, err := deps.service.GetSalaryConfigs(ctx, companyID, "monthly")

		require.NoError(t, err)
		assert.Equal(t, rows, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache failure falls through to repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		rows := sampleRows(companyUUID)
		payload, _ := json.Marshal(rows)

		deps.redismock.ExpectGet(key).SetErr(errors.New("connection refused"))
		deps.repo.EXPECT().FindActiveByPayType(gomock.Any(), companyID, "monthly").Return(rows, nil)
		deps.redismock.ExpectSet(key, string(payload), cacheTTL).SetErr(errors.New("connection refused"))

		got, err := deps.service.GetSalaryConfigs(ctx, companyID, "monthly")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		repoErr := errors.New("db down")

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindActiveByPayType(gomock.Any(), companyID, "monthly").Return(nil, repoErr)

		got, err := deps.service.GetSalaryConfigs(ctx, companyID, "monthly")

		assert.ErrorIs(t, err, repoErr)
		assert.Nil(t, got)
	})

	t.Run("invalid pay type", func(t *testing.T) {
		deps := setupServiceTest(t)

		got, err := deps.service.GetSalaryConfigs(ctx, companyID, "weekly")

		assert.ErrorIs(t, err, salaryconfigerrors.ErrInvalidPayType)
		assert.Nil(t, got)
	})
}

func TestSalaryConfigService_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := salaryconfigMock.NewMockRepository(ctrl)
	svc := salaryconfig.NewService(repo, nil, 0)
	companyID := uuid.NewString()

	repo.EXPECT().FindActiveByPayType(gomock.Any(), companyID, "hourly").Return([]salaryconfig.SalaryConfig{}, nil)

	got, err := svc.GetSalaryConfigs(context.Background(), companyID, "hourly")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, svc.Invalidate(context.Background(), companyID, "hourly"))
}

func TestSalaryConfigService_Invalidate(t *testing.T) {
	deps := setupServiceTest(t)
	companyID := uuid.NewString()

	deps.redismock.ExpectDel(salaryconfig.GetCacheKey(companyID, "hourly")).SetVal(1)

	err := deps.service.Invalidate(context.Background(), companyID, "hourly")
	assert.NoError(t, err)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

type blockingRepo struct {
	started chan struct{}
	release chan struct{}
	rows    []salaryconfig.SalaryConfig

	mu     sync.Mutex
	calls  int
	ctxErr error
}

func (r *blockingRepo) FindActiveByPayType(ctx context.Context, companyID, payType string) ([]salaryconfig.SalaryConfig, error) {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()

	if first {
		close(r.started)
		<-r.release
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if first {
		r.ctxErr = ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.rows, nil
}

func TestSalaryConfigService_SharedLoadSurvivesCallerCancel(t *testing.T) {
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	repo := &blockingRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
		rows:    sampleRows(companyUUID),
	}
	svc := salaryconfig.NewService(repo, nil, cacheTTL)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.GetSalaryConfigs(firstCtx, companyID, "monthly")
		firstErr <- err
	}()
	<-repo.started

	type result struct {
		rows []salaryconfig.SalaryConfig
		err  error
	}
	second := make(chan result, 1)
	go func() {
		rows, err := svc.GetSalaryConfigs(context.Background(), companyID, "monthly")
		second <- result{rows, err}
	}()

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(repo.release)
	select {
	case got := <-second:
		require.NoError(t, got.err)
		assert.Len(t, got.rows, 2)
	case <-time.After(time.Second):
		t.Fatal("second caller did not return")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.NoError(t, repo.ctxErr)
}
