package payroll

import "github.com/shopspring/decimal"

var (
	// PersonalDeduction and DependentDeduction are the monthly family
	// deductions subtracted before tax.
	PersonalDeduction  = decimal.NewFromInt(11_000_000)
	DependentDeduction = decimal.NewFromInt(4_400_000)

	hundred = decimal.NewFromInt(100)
)

type taxBracket struct {
	ceiling decimal.Decimal // zero on the last bracket
	rate    decimal.Decimal
}

var pitBrackets = []taxBracket{
	{decimal.NewFromInt(5_000_000), decimal.RequireFromString("0.05")},
	{decimal.NewFromInt(10_000_000), decimal.RequireFromString("0.10")},
	{decimal.NewFromInt(18_000_000), decimal.RequireFromString("0.15")},
	{decimal.NewFromInt(32_000_000), decimal.RequireFromString("0.20")},
	{decimal.NewFromInt(52_000_000), decimal.RequireFromString("0.25")},
	{decimal.NewFromInt(80_000_000), decimal.RequireFromString("0.30")},
	{decimal.Zero, decimal.RequireFromString("0.35")},
}

// CalculatePIT applies the progressive schedule to a monthly taxable
// income. Each bracket taxes only the slice above the previous ceiling.
// The result is rounded to a whole currency unit.
func CalculatePIT(taxable decimal.Decimal) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	floor := decimal.Zero
	for _, b := range pitBrackets {
		top := taxable
		if !b.ceiling.IsZero() && taxable.GreaterThan(b.ceiling) {
			top = b.ceiling
		}
		tax = tax.Add(top.Sub(floor).Mul(b.rate))
		if b.ceiling.IsZero() || taxable.LessThanOrEqual(b.ceiling) {
			break
		}
		floor = b.ceiling
	}
	return tax.Round(0)
}

// InsuranceDeduction is base × ratePercent / 100.
func InsuranceDeduction(base, ratePercent decimal.Decimal) decimal.Decimal {
	return base.Mul(ratePercent).Div(hundred)
}

// TaxableIncome is gross less insurance and family deductions, floored
// at zero.
func TaxableIncome(gross, insurance decimal.Decimal, dependents int) decimal.Decimal {
	deps := DependentDeduction.Mul(decimal.NewFromInt(int64(dependents)))
	taxable := gross.Sub(insurance).Sub(PersonalDeduction).Sub(deps)
	return decimal.Max(decimal.Zero, taxable)
}
