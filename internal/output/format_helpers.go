package output

import (
	"strconv"

	"github.com/pensionmodeler/pension-modeler/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole euros with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatWhole renders a monetary amount as whole units without grouping, as exported to CSV.
func FormatWhole(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).String()
}

// FormatService renders years of service with 2 decimals, half to even like money.
func FormatService(years stddec.Decimal) string {
	return years.StringFixedBank(2)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
