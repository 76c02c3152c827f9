package estimate

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Display is the presentation form of a Result: energy to two decimals,
// cost to a whole currency unit with thousands separators.
type Display struct {
	DailyEnergyKWh   string `json:"daily_energy_kwh"`
	MonthlyEnergyKWh string `json:"monthly_energy_kwh"`
	MonthlyCost      string `json:"monthly_cost"`
}

// exact returns the full binary value of f as a decimal. 1074 fractional
// digits cover the smallest subnormal float64, so no digit is lost.
func exact(f float64) decimal.Decimal {
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'f', 1074, 64))
	if err != nil {
		// NaN and Inf have no decimal form
		return decimal.Zero
	}
	return d
}

// RoundEnergy rounds a kWh figure to two decimal places. The stored float is
// rounded, not its shortest printed form, and exact ties go to even.
func RoundEnergy(kwh float64) decimal.Decimal {
	return exact(kwh).RoundBank(2)
}

// RoundCost rounds a cost to a whole currency unit, ties to even.
func RoundCost(cost float64) decimal.Decimal {
	return exact(cost).RoundBank(0)
}

// FormatCost renders cost as e.g. "5,850 원". An empty symbol omits the suffix.
func FormatCost(cost float64, symbol string) string {
	s := humanize.Comma(RoundCost(cost).IntPart())
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// Display formats r for presentation using the given currency symbol.
func (r Result) Display(symbol string) Display {
	return Display{
		DailyEnergyKWh:   RoundEnergy(r.DailyEnergyKWh).StringFixed(2),
		MonthlyEnergyKWh: RoundEnergy(r.MonthlyEnergyKWh).StringFixed(2),
		MonthlyCost:      FormatCost(r.MonthlyCost, symbol),
	}
}
