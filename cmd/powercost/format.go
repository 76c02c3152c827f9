package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"power-cost-backend/internal/estimate"
	"power-cost-backend/internal/model"
)

type estimateJSON struct {
	Device              string           `json:"device"`
	PowerSaving         bool             `json:"power_saving"`
	PowerWatts          int              `json:"power_watts"`
	EffectivePowerWatts float64          `json:"effective_power_watts"`
	HoursPerDay         float64          `json:"hours_per_day"`
	DaysPerMonth        int              `json:"days_per_month"`
	UnitPrice           float64          `json:"unit_price"`
	Currency            string           `json:"currency"`
	DailyEnergyKWh      float64          `json:"daily_energy_kwh"`
	MonthlyEnergyKWh    float64          `json:"monthly_energy_kwh"`
	MonthlyCost         float64          `json:"monthly_cost"`
	Tip                 string           `json:"tip"`
	PowerSavingMessage  string           `json:"power_saving_message,omitempty"`
	Display             estimate.Display `json:"display"`
}

func jsonEstimate(in estimate.Input, res estimate.Result, currency, symbol string) estimateJSON {
	out := estimateJSON{
		Device:              in.Device,
		PowerSaving:         in.PowerSaving,
		PowerWatts:          in.PowerWatts,
		EffectivePowerWatts: res.EffectivePowerWatts,
		HoursPerDay:         in.HoursPerDay,
		DaysPerMonth:        in.DaysInMonth,
		UnitPrice:           in.UnitPrice,
		Currency:            currency,
		DailyEnergyKWh:      res.DailyEnergyKWh,
		MonthlyEnergyKWh:    res.MonthlyEnergyKWh,
		MonthlyCost:         res.MonthlyCost,
		Tip:                 res.Tip,
		Display:             res.Display(symbol),
	}
	if in.PowerSaving {
		out.PowerSavingMessage = estimate.PowerSavingMessage
	}
	return out
}

// deviceColumn pads name to the device column by terminal cell width, so
// Hangul names line up with ASCII ones.
func deviceColumn(name string) string {
	return runewidth.FillRight(name, 12)
}

// writeEstimate prints a result the way the calculator form showed it.
func writeEstimate(w io.Writer, in estimate.Input, res estimate.Result, symbol string) {
	d := res.Display(symbol)
	fmt.Fprintf(w, "전자제품: %s\n", in.Device)
	fmt.Fprintf(w, "하루 사용 전력: %s kWh\n", d.DailyEnergyKWh)
	fmt.Fprintf(w, "한 달 사용 전력: %s kWh\n", d.MonthlyEnergyKWh)
	fmt.Fprintf(w, "예상 전기요금: %s\n", d.MonthlyCost)
	if in.PowerSaving {
		fmt.Fprintf(w, "\n%s\n", estimate.PowerSavingMessage)
	}
	fmt.Fprintf(w, "\n절전 팁: %s\n", res.Tip)
}

func writeHistory(w io.Writer, estimates []model.Estimate, symbol string) {
	fmt.Fprintf(w, "%-6s  %-16s  %s  %10s  %12s\n", "ID", "Saved", deviceColumn("Device"), "kWh/month", "Cost")
	fmt.Fprintln(w, "------------------------------------------------------------------")

	var totalKWh, totalCost float64
	for _, e := range estimates {
		fmt.Fprintf(w, "%-6d  %-16s  %s  %10s  %12s\n",
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			deviceColumn(e.Device),
			estimate.RoundEnergy(e.MonthlyEnergyKWh).StringFixed(2),
			humanize.Comma(estimate.RoundCost(e.MonthlyCost).IntPart()),
		)
		totalKWh += e.MonthlyEnergyKWh
		totalCost += e.MonthlyCost
	}

	fmt.Fprintln(w, "------------------------------------------------------------------")
	fmt.Fprintf(w, "Total: %s kWh, %s (%d estimates)\n",
		estimate.RoundEnergy(totalKWh).StringFixed(2), estimate.FormatCost(totalCost, symbol), len(estimates))
}
