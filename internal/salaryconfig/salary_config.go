package salaryconfig

import (
	"fmt"
	"strconv"
	"strings"

	salaryconfigerrors "onebiz-payroll/internal/salaryconfig/errors"

	"github.com/shopspring/decimal"
)

const (
	KeyMinHoursForLunch     = "min_hours_for_lunch"
	KeyStandardWorkDays     = "standard_work_days"
	KeyLunchAllowancePerDay = "lunch_allowance_per_day"
	KeyTransportAllowance   = "transport_allowance"
	KeyPhoneAllowance       = "phone_allowance"
	KeyOtherAllowance       = "other_allowance"
	KeyHasInsurance         = "has_insurance"
	KeyBHXHRate             = "bhxh_rate"
	KeyBHYTRate             = "bhyt_rate"
	KeyBHTNRate             = "bhtn_rate"

	KeyHourlyRate          = "hourly_rate"
	KeyOTWeekdayMultiplier = "ot_weekday_multiplier"
	KeyOTWeekendMultiplier = "ot_weekend_multiplier"
	KeyOTHolidayMultiplier = "ot_holiday_multiplier"
	KeyNightShiftAllowance = "night_shift_allowance"
	KeyNightShiftStartHour = "night_shift_start_hour"
	KeyNightShiftEndHour   = "night_shift_end_hour"
	KeyAttendanceBonus     = "attendance_bonus"
)

var (
	DefaultMinHoursForLunch    = decimal.NewFromInt(7)
	DefaultStandardWorkDays    = decimal.NewFromInt(26)
	DefaultOTWeekdayMultiplier = decimal.RequireFromString("1.5")
	DefaultOTWeekendMultiplier = decimal.NewFromInt(2)
	DefaultOTHolidayMultiplier = decimal.NewFromInt(3)
	DefaultNightShiftStartHour = decimal.NewFromInt(22)
	DefaultNightShiftEndHour   = decimal.NewFromInt(6)
)

// GetConfigValue returns the numeric value stored under key, or 0 when the
// key is absent or its value does not parse. It never fails.
func GetConfigValue(configs []SalaryConfig, key string) float64 {
	for _, c := range configs {
		if c.ConfigKey != key {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(c.ConfigValue), 64)
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

// Optional is a configured amount that remembers whether it was set, so an
// intentional zero can be told apart from a missing key.
type Optional struct {
	value decimal.Decimal
	set   bool
}

func Some(v decimal.Decimal) Optional {
	return Optional{value: v, set: true}
}

func (o Optional) IsSet() bool {
	return o.set
}

// Or returns the configured value, or def when the key was not configured.
func (o Optional) Or(def decimal.Decimal) decimal.Decimal {
	if !o.set {
		return def
	}
	return o.value
}

// Value returns the configured value, zero when unset.
func (o Optional) Value() decimal.Decimal {
	return o.Or(decimal.Zero)
}

// Common holds the keys shared by both pay types.
type Common struct {
	MinHoursForLunch     Optional
	StandardWorkDays     Optional
	LunchAllowancePerDay Optional
	TransportAllowance   Optional
	PhoneAllowance       Optional
	OtherAllowance       Optional
	HasInsurance         Optional
	BHXHRate             Optional
	BHYTRate             Optional
	BHTNRate             Optional
}

func (c *Common) fields() map[string]*Optional {
	return map[string]*Optional{
		KeyMinHoursForLunch:     &c.MinHoursForLunch,
		KeyStandardWorkDays:     &c.StandardWorkDays,
		KeyLunchAllowancePerDay: &c.LunchAllowancePerDay,
		KeyTransportAllowance:   &c.TransportAllowance,
		KeyPhoneAllowance:       &c.PhoneAllowance,
		KeyOtherAllowance:       &c.OtherAllowance,
		KeyHasInsurance:         &c.HasInsurance,
		KeyBHXHRate:             &c.BHXHRate,
		KeyBHYTRate:             &c.BHYTRate,
		KeyBHTNRate:             &c.BHTNRate,
	}
}

// MinHours is the daily hour threshold for a date to count as a work day.
func (c Common) MinHours() decimal.Decimal {
	return c.MinHoursForLunch.Or(DefaultMinHoursForLunch)
}

// FallbackWorkDays is used only when the calendar walk yields zero days.
func (c Common) FallbackWorkDays() int {
	return int(c.StandardWorkDays.Or(DefaultStandardWorkDays).IntPart())
}

func (c Common) InsuranceEnabled() bool {
	return !c.HasInsurance.Value().IsZero()
}

// InsuranceRatePercent is bhxh + bhyt + bhtn, in percent.
func (c Common) InsuranceRatePercent() decimal.Decimal {
	return c.BHXHRate.Value().Add(c.BHYTRate.Value()).Add(c.BHTNRate.Value())
}

type MonthlyConfig struct {
	Common
}

type HourlyConfig struct {
	Common
	HourlyRate          Optional
	OTWeekdayMultiplier Optional
	OTWeekendMultiplier Optional
	OTHolidayMultiplier Optional
	NightShiftAllowance Optional
	NightShiftStartHour Optional
	NightShiftEndHour   Optional
	AttendanceBonus     Optional
}

func (c *HourlyConfig) fields() map[string]*Optional {
	f := c.Common.fields()
	f[KeyHourlyRate] = &c.HourlyRate
	f[KeyOTWeekdayMultiplier] = &c.OTWeekdayMultiplier
	f[KeyOTWeekendMultiplier] = &c.OTWeekendMultiplier
	f[KeyOTHolidayMultiplier] = &c.OTHolidayMultiplier
	f[KeyNightShiftAllowance] = &c.NightShiftAllowance
	f[KeyNightShiftStartHour] = &c.NightShiftStartHour
	f[KeyNightShiftEndHour] = &c.NightShiftEndHour
	f[KeyAttendanceBonus] = &c.AttendanceBonus
	return f
}

func (c HourlyConfig) WeekdayMultiplier() decimal.Decimal {
	return c.OTWeekdayMultiplier.Or(DefaultOTWeekdayMultiplier)
}

func (c HourlyConfig) WeekendMultiplier() decimal.Decimal {
	return c.OTWeekendMultiplier.Or(DefaultOTWeekendMultiplier)
}

func (c HourlyConfig) HolidayMultiplier() decimal.Decimal {
	return c.OTHolidayMultiplier.Or(DefaultOTHolidayMultiplier)
}

// NightWindow returns the [start, end) hours a check-in must fall into for
// the shift to count as a night shift. The window wraps past midnight.
func (c HourlyConfig) NightWindow() (start, end int) {
	return int(c.NightShiftStartHour.Or(DefaultNightShiftStartHour).IntPart()),
		int(c.NightShiftEndHour.Or(DefaultNightShiftEndHour).IntPart())
}

// LoadMonthly builds the typed monthly configuration. Unknown keys are
// ignored; a non-numeric value or a duplicated active key is an error.
func LoadMonthly(rows []SalaryConfig) (MonthlyConfig, error) {
	var cfg MonthlyConfig
	if err := load(rows, PayTypeMonthly, cfg.fields()); err != nil {
		return MonthlyConfig{}, err
	}
	return cfg, nil
}

func LoadHourly(rows []SalaryConfig) (HourlyConfig, error) {
	var cfg HourlyConfig
	if err := load(rows, PayTypeHourly, cfg.fields()); err != nil {
		return HourlyConfig{}, err
	}
	return cfg, nil
}

func load(rows []SalaryConfig, payType string, fields map[string]*Optional) error {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if !row.IsActive || row.PayType != payType {
			continue
		}
		if _, dup := seen[row.ConfigKey]; dup {
			return fmt.Errorf("%w: %s", salaryconfigerrors.ErrDuplicateConfigKey, row.ConfigKey)
		}
		seen[row.ConfigKey] = struct{}{}

		target, ok := fields[row.ConfigKey]
		if !ok {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(row.ConfigValue))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", salaryconfigerrors.ErrInvalidConfigValue, row.ConfigKey, row.ConfigValue)
		}
		*target = Some(v)
	}
	return nil
}
