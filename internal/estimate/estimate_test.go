package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestEstimate_Scenarios(t *testing.T) {
	testCases := []struct {
		name            string
		input           Input
		expectedPower   float64
		expectedDaily   float64
		expectedMonthly float64
		expectedCost    float64
	}{
		{
			name:            "Air conditioner, no power saving",
			input:           Input{Device: AirConditioner, PowerWatts: 1500, HoursPerDay: 1.0, DaysInMonth: 30, UnitPrice: 130},
			expectedPower:   1500,
			expectedDaily:   1.5,
			expectedMonthly: 45,
			expectedCost:    5850,
		},
		{
			name:            "Air conditioner, power saving",
			input:           Input{Device: AirConditioner, PowerSaving: true, PowerWatts: 1500, HoursPerDay: 1.0, DaysInMonth: 30, UnitPrice: 130},
			expectedPower:   1050,
			expectedDaily:   1.05,
			expectedMonthly: 31.5,
			expectedCost:    4095,
		},
		{
			name:            "Minimum power and zero hours",
			input:           Input{Device: Computer, PowerWatts: 10, HoursPerDay: 0, DaysInMonth: 17, UnitPrice: 130},
			expectedPower:   10,
			expectedDaily:   0,
			expectedMonthly: 0,
			expectedCost:    0,
		},
		{
			name:            "TV all day every day",
			input:           Input{Device: TV, PowerWatts: 100, HoursPerDay: 24, DaysInMonth: 31, UnitPrice: 130},
			expectedPower:   100,
			expectedDaily:   2.4,
			expectedMonthly: 74.4,
			expectedCost:    9672,
		},
		{
			name:            "Upper bounds",
			input:           Input{Device: "산업용 히터", PowerWatts: 10000, HoursPerDay: 24, DaysInMonth: 31, UnitPrice: 130},
			expectedPower:   10000,
			expectedDaily:   240,
			expectedMonthly: 7440,
			expectedCost:    967200,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Estimate(tc.input)
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedPower, res.EffectivePowerWatts, tolerance)
			assert.InDelta(t, tc.expectedDaily, res.DailyEnergyKWh, tolerance)
			assert.InDelta(t, tc.expectedMonthly, res.MonthlyEnergyKWh, tolerance)
			assert.InDelta(t, tc.expectedCost, res.MonthlyCost, 1e-6)
			assert.NotEmpty(t, res.Tip)
		})
	}
}

func TestEstimate_DerivedRelations(t *testing.T) {
	for watts := MinPowerWatts; watts <= MaxPowerWatts; watts += 997 {
		for hours := 0.0; hours <= 24; hours += 2.5 {
			for days := MinDaysInMonth; days <= MaxDaysInMonth; days += 6 {
				in := Input{PowerWatts: watts, HoursPerDay: hours, DaysInMonth: days, UnitPrice: 142.3}
				res, err := Estimate(in)
				require.NoError(t, err)
				assert.InDelta(t, res.DailyEnergyKWh*float64(days), res.MonthlyEnergyKWh, tolerance)
				assert.InDelta(t, res.MonthlyEnergyKWh*in.UnitPrice, res.MonthlyCost, 1e-6)
				assert.GreaterOrEqual(t, res.MonthlyCost, 0.0)

				in.PowerSaving = true
				saved, err := Estimate(in)
				require.NoError(t, err)
				assert.InDelta(t, 0.7*float64(watts), saved.EffectivePowerWatts, tolerance)
				assert.Less(t, saved.EffectivePowerWatts, res.EffectivePowerWatts)
			}
		}
	}
}

func TestEstimate_InvalidInput(t *testing.T) {
	valid := Input{Device: TV, PowerWatts: 100, HoursPerDay: 1, DaysInMonth: 30, UnitPrice: 130}

	testCases := []struct {
		name   string
		mutate func(in *Input)
	}{
		{name: "Power below minimum", mutate: func(in *Input) { in.PowerWatts = 9 }},
		{name: "Power above maximum", mutate: func(in *Input) { in.PowerWatts = 10001 }},
		{name: "Negative hours", mutate: func(in *Input) { in.HoursPerDay = -0.5 }},
		{name: "Too many hours", mutate: func(in *Input) { in.HoursPerDay = 24.5 }},
		{name: "NaN hours", mutate: func(in *Input) { in.HoursPerDay = math.NaN() }},
		{name: "Zero days", mutate: func(in *Input) { in.DaysInMonth = 0 }},
		{name: "Too many days", mutate: func(in *Input) { in.DaysInMonth = 32 }},
		{name: "Zero unit price", mutate: func(in *Input) { in.UnitPrice = 0 }},
		{name: "Negative unit price", mutate: func(in *Input) { in.UnitPrice = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := Estimate(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestTipFor(t *testing.T) {
	assert.Contains(t, TipFor(AirConditioner), "26°C")
	assert.Contains(t, TipFor(Refrigerator), "냉장고")
	assert.Contains(t, TipFor(TV), "플러그")

	generic := TipFor(WashingMachine)
	assert.NotEmpty(t, generic)
	for _, name := range []string{Computer, Microwave, "", "unknown gadget", "tv"} {
		assert.Equal(t, generic, TipFor(name), "device %q should get the generic tip", name)
	}
}

func TestDefaultPower(t *testing.T) {
	expected := map[string]int{
		AirConditioner: 1500,
		Refrigerator:   200,
		TV:             100,
		WashingMachine: 500,
		Computer:       300,
		Microwave:      1000,
	}
	for name, watts := range expected {
		got, err := DefaultPower(name)
		require.NoError(t, err)
		assert.Equal(t, watts, got)
	}

	_, err := DefaultPower("toaster")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, Catalog(), len(expected))
}

func TestResult_Display(t *testing.T) {
	res, err := Estimate(Input{Device: TV, PowerWatts: 100, HoursPerDay: 24, DaysInMonth: 31, UnitPrice: 130})
	require.NoError(t, err)

	d := res.Display("원")
	assert.Equal(t, "2.40", d.DailyEnergyKWh)
	assert.Equal(t, "74.40", d.MonthlyEnergyKWh)
	assert.Equal(t, "9,672 원", d.MonthlyCost)

	assert.Equal(t, "967,200", FormatCost(967200, ""))
	assert.Equal(t, "0.00", RoundEnergy(0).StringFixed(2))

	// 0.03 kW * 0.5 h is stored as 0.01499999..., which rounds down.
	res, err = Estimate(Input{Device: TV, PowerWatts: 30, HoursPerDay: 0.5, DaysInMonth: 30, UnitPrice: 130})
	require.NoError(t, err)
	assert.Equal(t, "0.01", res.Display("").DailyEnergyKWh)

	// 0.05 kWh * 130 is exactly 6.5; the tie goes to the even unit.
	res, err = Estimate(Input{Device: TV, PowerWatts: 10, HoursPerDay: 0.5, DaysInMonth: 10, UnitPrice: 130})
	require.NoError(t, err)
	assert.Equal(t, 6.5, res.MonthlyCost)
	assert.Equal(t, "6 원", res.Display("원").MonthlyCost)

	assert.Equal(t, "8", FormatCost(7.5, ""))
	assert.Equal(t, "0.12", RoundEnergy(0.125).StringFixed(2))
	assert.Equal(t, "0", FormatCost(math.NaN(), ""))
}
