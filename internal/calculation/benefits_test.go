package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassicDBPension(t *testing.T) {
	tests := []struct {
		name            string
		finalSalary     decimal.Decimal
		service         decimal.Decimal
		expectedPension decimal.Decimal
		expectedLump    decimal.Decimal
	}{
		{
			name:            "Forty years at 80000",
			finalSalary:     decimal.NewFromInt(80000),
			service:         decimal.NewFromInt(40),
			expectedPension: decimal.NewFromInt(40000),
			expectedLump:    decimal.RequireFromString("106666.6666666666666667"),
		},
		{
			name:            "Thirty years at 120000",
			finalSalary:     decimal.NewFromInt(120000),
			service:         decimal.NewFromInt(30),
			expectedPension: decimal.NewFromInt(45000),
			expectedLump:    decimal.NewFromInt(120000), // divisor 30, not 80/3
		},
		{
			name:            "Zero salary",
			finalSalary:     decimal.Zero,
			service:         decimal.NewFromInt(25),
			expectedPension: decimal.Zero,
			expectedLump:    decimal.Zero,
		},
		{
			name:            "Zero service",
			finalSalary:     decimal.NewFromInt(95000),
			service:         decimal.Zero,
			expectedPension: decimal.Zero,
			expectedLump:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pension, lump := ClassicDBPension(tt.finalSalary, tt.service)
			assert.True(t, pension.Equal(tt.expectedPension), "pension: expected %s, got %s", tt.expectedPension, pension)
			assert.True(t, lump.Equal(tt.expectedLump), "lump sum: expected %s, got %s", tt.expectedLump, lump)
		})
	}
}
