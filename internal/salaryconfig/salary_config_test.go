package salaryconfig_test

import (
	"testing"

	"onebiz-payroll/internal/salaryconfig"
	salaryconfigerrors "onebiz-payroll/internal/salaryconfig/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(payType, key, value string) salaryconfig.SalaryConfig {
	return salaryconfig.SalaryConfig{PayType: payType, ConfigKey: key, ConfigValue: value, IsActive: true}
}

func TestGetConfigValue(t *testing.T) {
	rows := []salaryconfig.SalaryConfig{
		row("monthly", "standard_work_days", "26"),
		row("monthly", "bhxh_rate", " 8.5 "),
		row("monthly", "phone_allowance", "abc"),
	}

	tests := []struct {
		name string
		key  string
		want float64
	}{
		{"integer", "standard_work_days", 26},
		{"decimal with spaces", "bhxh_rate", 8.5},
		{"unparsable", "phone_allowance", 0},
		{"absent", "other_allowance", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, salaryconfig.GetConfigValue(rows, tt.key))
		})
	}
}

func TestLoadMonthly(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		cfg, err := salaryconfig.LoadMonthly(nil)
		require.NoError(t, err)

		assert.True(t, cfg.MinHours().Equal(decimal.NewFromInt(7)))
		assert.Equal(t, 26, cfg.FallbackWorkDays())
		assert.False(t, cfg.InsuranceEnabled())
		assert.False(t, cfg.LunchAllowancePerDay.IsSet())
	})

	t.Run("reads configured keys", func(t *testing.T) {
		cfg, err := salaryconfig.LoadMonthly([]salaryconfig.SalaryConfig{
			row("monthly", "min_hours_for_lunch", "6"),
			row("monthly", "has_insurance", "1"),
			row("monthly", "bhxh_rate", "8"),
			row("monthly", "bhyt_rate", "1.5"),
			row("monthly", "bhtn_rate", "1"),
			row("monthly", "lunch_allowance_per_day", "0"),
			row("monthly", "unknown_key", "99"),
		})
		require.NoError(t, err)

		assert.True(t, cfg.MinHours().Equal(decimal.NewFromInt(6)))
		assert.True(t, cfg.InsuranceEnabled())
		assert.True(t, cfg.InsuranceRatePercent().Equal(decimal.RequireFromString("10.5")))
		assert.True(t, cfg.LunchAllowancePerDay.IsSet())
		assert.True(t, cfg.LunchAllowancePerDay.Value().IsZero())
	})

	t.Run("ignores other pay type and inactive rows", func(t *testing.T) {
		inactive := row("monthly", "standard_work_days", "abc")
		inactive.IsActive = false

		cfg, err := salaryconfig.LoadMonthly([]salaryconfig.SalaryConfig{
			row("hourly", "standard_work_days", "20"),
			inactive,
		})
		require.NoError(t, err)
		assert.False(t, cfg.StandardWorkDays.IsSet())
	})

	t.Run("non numeric value", func(t *testing.T) {
		_, err := salaryconfig.LoadMonthly([]salaryconfig.SalaryConfig{
			row("monthly", "bhxh_rate", "eight"),
		})
		assert.ErrorIs(t, err, salaryconfigerrors.ErrInvalidConfigValue)
	})

	t.Run("duplicate active key", func(t *testing.T) {
		_, err := salaryconfig.LoadMonthly([]salaryconfig.SalaryConfig{
			row("monthly", "bhxh_rate", "8"),
			row("monthly", "bhxh_rate", "9"),
		})
		assert.ErrorIs(t, err, salaryconfigerrors.ErrDuplicateConfigKey)
	})
}

func TestLoadHourly(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := salaryconfig.LoadHourly(nil)
		require.NoError(t, err)

		assert.True(t, cfg.WeekdayMultiplier().Equal(decimal.RequireFromString("1.5")))
		assert.True(t, cfg.WeekendMultiplier().Equal(decimal.NewFromInt(2)))
		assert.True(t, cfg.HolidayMultiplier().Equal(decimal.NewFromInt(3)))
		start, end := cfg.NightWindow()
		assert.Equal(t, 22, start)
		assert.Equal(t, 6, end)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := salaryconfig.LoadHourly([]salaryconfig.SalaryConfig{
			row("hourly", "hourly_rate", "50000"),
			row("hourly", "ot_weekend_multiplier", "2.5"),
			row("hourly", "night_shift_start_hour", "21"),
			row("hourly", "night_shift_end_hour", "5"),
			row("hourly", "attendance_bonus", "500000"),
		})
		require.NoError(t, err)

		assert.True(t, cfg.HourlyRate.Value().Equal(decimal.NewFromInt(50000)))
		assert.True(t, cfg.WeekendMultiplier().Equal(decimal.RequireFromString("2.5")))
		start, end := cfg.NightWindow()
		assert.Equal(t, 21, start)
		assert.Equal(t, 5, end)
		assert.True(t, cfg.AttendanceBonus.Value().Equal(decimal.NewFromInt(500000)))
	})
}
