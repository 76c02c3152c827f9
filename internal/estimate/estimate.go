package estimate

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when an input falls outside its documented range
// or a default power draw is requested for a device the catalog does not know.
var ErrInvalidInput = errors.New("invalid input")

const (
	MinPowerWatts  = 10
	MaxPowerWatts  = 10000
	MinHoursPerDay = 0.0
	MaxHoursPerDay = 24.0
	MinDaysInMonth = 1
	MaxDaysInMonth = 31

	// DefaultUnitPrice is the price per kWh in KRW.
	DefaultUnitPrice = 130.0

	// PowerSavingFactor is applied to the power draw when power-saving mode is on.
	PowerSavingFactor = 0.7
)

// PowerSavingMessage is shown alongside results computed in power-saving mode.
const PowerSavingMessage = "절전모드가 적용되어 소비 전력이 30% 감소했어요!"

// Input holds one usage scenario.
type Input struct {
	Device      string
	PowerSaving bool
	PowerWatts  int
	HoursPerDay float64
	DaysInMonth int
	UnitPrice   float64
}

// Result holds the derived energy and cost figures. Values are unrounded;
// use Display for presentation.
type Result struct {
	EffectivePowerWatts float64
	DailyEnergyKWh      float64
	MonthlyEnergyKWh    float64
	MonthlyCost         float64
	Tip                 string
}

// Validate reports whether every numeric field is within range.
func (in Input) Validate() error {
	if in.PowerWatts < MinPowerWatts || in.PowerWatts > MaxPowerWatts {
		return fmt.Errorf("%w: power_watts %d outside [%d, %d]", ErrInvalidInput, in.PowerWatts, MinPowerWatts, MaxPowerWatts)
	}
	// written as a negated range check so NaN is rejected
	if !(in.HoursPerDay >= MinHoursPerDay && in.HoursPerDay <= MaxHoursPerDay) {
		return fmt.Errorf("%w: hours_per_day %v outside [%v, %v]", ErrInvalidInput, in.HoursPerDay, MinHoursPerDay, MaxHoursPerDay)
	}
	if in.DaysInMonth < MinDaysInMonth || in.DaysInMonth > MaxDaysInMonth {
		return fmt.Errorf("%w: days_per_month %d outside [%d, %d]", ErrInvalidInput, in.DaysInMonth, MinDaysInMonth, MaxDaysInMonth)
	}
	if !(in.UnitPrice > 0) || math.IsInf(in.UnitPrice, 1) {
		return fmt.Errorf("%w: unit_price %v must be positive", ErrInvalidInput, in.UnitPrice)
	}
	return nil
}

// EffectivePower returns the power draw after the power-saving reduction.
func EffectivePower(watts int, powerSaving bool) float64 {
	p := float64(watts)
	if powerSaving {
		p *= PowerSavingFactor
	}
	return p
}

// Estimate computes daily and monthly energy and the monthly cost for in.
// It has no side effects and rejects out-of-range input with ErrInvalidInput.
func Estimate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	power := EffectivePower(in.PowerWatts, in.PowerSaving)
	daily := (power / 1000) * in.HoursPerDay
	monthly := daily * float64(in.DaysInMonth)

	return Result{
		EffectivePowerWatts: power,
		DailyEnergyKWh:      daily,
		MonthlyEnergyKWh:    monthly,
		MonthlyCost:         monthly * in.UnitPrice,
		Tip:                 TipFor(in.Device),
	}, nil
}

// DefaultPower returns the catalog power draw for device.
func DefaultPower(device string) (int, error) {
	d, ok := Lookup(device)
	if !ok {
		return 0, fmt.Errorf("%w: unknown device %q has no default power draw", ErrInvalidInput, device)
	}
	return d.DefaultWatts, nil
}
