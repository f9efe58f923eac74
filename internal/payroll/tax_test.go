package payroll_test

import (
	"testing"

	"onebiz-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestCalculatePIT(t *testing.T) {
	tests := []struct {
		name    string
		taxable string
		want    string
	}{
		{"negative", "-1000", "0"},
		{"zero", "0", "0"},
		{"first bracket", "4000000", "200000"},
		{"first ceiling", "5000000", "250000"},
		{"second bracket", "8000000", "550000"},
		{"fourth bracket", "20000000", "2350000"},
		{"top bracket", "100000000", "25150000"},
		{"rounds to whole unit", "1000001", "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, payroll.CalculatePIT(dec(tt.taxable)))
		})
	}
}

func TestCalculatePIT_MonotonicAcrossBoundaries(t *testing.T) {
	boundaries := []int64{5_000_000, 10_000_000, 18_000_000, 32_000_000, 52_000_000, 80_000_000}

	for _, b := range boundaries {
		below := payroll.CalculatePIT(decimal.NewFromInt(b - 1))
		at := payroll.CalculatePIT(decimal.NewFromInt(b))
		above := payroll.CalculatePIT(decimal.NewFromInt(b + 1))

		assert.True(t, below.LessThanOrEqual(at), "boundary %d", b)
		assert.True(t, at.LessThanOrEqual(above), "boundary %d", b)
		// a one-unit step never moves the tax by more than one unit
		assert.True(t, above.Sub(below).LessThanOrEqual(decimal.NewFromInt(2)), "boundary %d", b)
	}

	prev := decimal.Zero
	for x := int64(0); x <= 120_000_000; x += 250_000 {
		cur := payroll.CalculatePIT(decimal.NewFromInt(x))
		assert.True(t, cur.GreaterThanOrEqual(prev), "at %d", x)
		prev = cur
	}
}

func TestTaxableIncome(t *testing.T) {
	assertDecimal(t, "8000000", payroll.TaxableIncome(dec("20000000"), dec("1000000"), 0))
	assertDecimal(t, "3600000", payroll.TaxableIncome(dec("20000000"), dec("1000000"), 1))
	assertDecimal(t, "0", payroll.TaxableIncome(dec("10000000"), dec("0"), 2))
}

func TestInsuranceDeduction(t *testing.T) {
	assertDecimal(t, "1050000", payroll.InsuranceDeduction(dec("10000000"), dec("10.5")))
	assertDecimal(t, "0", payroll.InsuranceDeduction(dec("10000000"), dec("0")))
}
