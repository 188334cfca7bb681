package calculation

import "github.com/shopspring/decimal"

var (
	// pensionAccrualDivisor gives a pension of 1/80th of final salary per year of service.
	pensionAccrualDivisor = decimal.NewFromInt(80)
	// lumpSumDivisor approximates the 3/80ths lump sum accrual; 30 is used literally, not 80/3.
	lumpSumDivisor = decimal.NewFromInt(30)
)

// ClassicDBPension derives the annual pension and lump sum for a classic final-salary scheme.
func ClassicDBPension(finalSalary, serviceYears decimal.Decimal) (annualPension, lumpSum decimal.Decimal) {
	accrued := finalSalary.Mul(serviceYears)
	annualPension = accrued.Div(pensionAccrualDivisor)
	lumpSum = accrued.Div(lumpSumDivisor)
	return annualPension, lumpSum
}
