package salaryconfig

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"onebiz-payroll/internal/employee"
	salaryconfigerrors "onebiz-payroll/internal/salaryconfig/errors"
	"onebiz-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PayTypeMonthly = employee.PayTypeMonthly
	PayTypeHourly  = employee.PayTypeHourly

	CacheKeyPrefix = "salary_configs:"

	// fillTimeout bounds a shared load, which outlives any single caller.
	fillTimeout = 10 * time.Second
)

func GetCacheKey(companyID, payType string) string {
	return CacheKeyPrefix + companyID + ":" + payType
}

func ValidPayType(payType string) bool {
	return payType == PayTypeMonthly || payType == PayTypeHourly
}

//go:generate mockgen -source=salary_config_service.go -destination=mock/salary_config_service_mock.go -package=mock
type Service interface {
	GetSalaryConfigs(ctx context.Context, companyID string, payType string) ([]SalaryConfig, error)
	Invalidate(ctx context.Context, companyID string, payType string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the config accessor. rdb may be nil, in which case
// every call reads the store.
func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryconfig.service")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetSalaryConfigs(ctx context.Context, companyID string, payType string) ([]SalaryConfig, error) {
	if !ValidPayType(payType) {
		return nil, salaryconfigerrors.ErrInvalidPayType
	}

	log := contextutil.GetLogger(ctx, s.logger)
	cacheKey := GetCacheKey(companyID, payType)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached []SalaryConfig
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				return cached, nil
			}
			log.Warn("salary config cache entry is corrupt, reloading", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Warn("salary config cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// The load is shared by every caller waiting on the key, so it runs
	// detached from the caller that started it. Each caller still gives up
	// on its own context.
	ch := s.sf.DoChan(cacheKey, func() (interface{}, error) {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fillTimeout)
		defer cancel()

		rows, err := s.repo.FindActiveByPayType(fillCtx, companyID, payType)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			payload, err := json.Marshal(rows)
			if err == nil {
				if err := s.rdb.Set(fillCtx, cacheKey, string(payload), s.ttl).Err(); err != nil {
					log.Warn("salary config cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return rows, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		log.Error("load salary configs failed",
			zap.String("company_id", companyID),
			zap.String("pay_type", payType),
			zap.Error(res.Err),
		)
		return nil, res.Err
	}

	return res.Val.([]SalaryConfig), nil
}

func (s *service) Invalidate(ctx context.Context, companyID string, payType string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, GetCacheKey(companyID, payType)).Err()
}
