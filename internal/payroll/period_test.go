package payroll_test

import (
	"testing"
	"time"

	"onebiz-payroll/internal/payroll"
	payrollerrors "onebiz-payroll/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	p, err := payroll.ParseMonth("2024-02", nil)
	require.NoError(t, err)

	assert.Equal(t, "2024-02", p.String())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.LastDay())
}

func TestParseMonth_Location(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	p, err := payroll.ParseMonth("2024-12", loc)
	require.NoError(t, err)

	assert.Equal(t, loc, p.Location())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), p.End())
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, v := range []string{"", "2024", "2024-13", "03-2024", "2024/03"} {
		_, err := payroll.ParseMonth(v, nil)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat, v)
	}
}
