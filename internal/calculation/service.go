package calculation

import "github.com/shopspring/decimal"

// ProjectService accrues reckonable service linearly and caps it at maxService.
// Service already above the cap is reported as-is: the cap limits growth, it never
// reduces service that has already been reckoned.
func ProjectService(baseService, accrualPerYear decimal.Decimal, years int, maxService decimal.Decimal) decimal.Decimal {
	if years < 0 {
		years = 0
	}
	if baseService.GreaterThan(maxService) {
		return baseService
	}
	projected := baseService.Add(accrualPerYear.Mul(decimal.NewFromInt(int64(years))))
	return decimal.Min(projected, maxService)
}
