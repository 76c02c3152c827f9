package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"power-cost-backend/internal/estimate"
	"power-cost-backend/internal/model"
	"power-cost-backend/internal/parse"
)

var (
	estDevice string
	estPower  int
	estSaving bool
	estHours  float64
	estDays   int
	estPrice  float64
	estJSON   bool
	estSave   bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the electricity cost of one appliance",
	Long: `Computes daily and monthly energy use and the monthly cost for an appliance.
The power draw defaults to the catalog value for the device; see "powercost devices".`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estDevice, "device", "", "device name, e.g. 에어컨, TV, fridge (required)")
	estimateCmd.Flags().IntVar(&estPower, "power", 0, "power draw in watts (10-10000, default: catalog value)")
	estimateCmd.Flags().BoolVar(&estSaving, "saving", false, "power-saving mode (30% lower draw)")
	estimateCmd.Flags().Float64Var(&estHours, "hours", 1.0, "hours of use per day (0-24)")
	estimateCmd.Flags().IntVar(&estDays, "days", 30, "days of use per month (1-31)")
	estimateCmd.Flags().Float64Var(&estPrice, "price", 0, "price per kWh (default: configured unit price)")
	estimateCmd.Flags().BoolVar(&estJSON, "json", false, "print the result as JSON")
	estimateCmd.Flags().BoolVar(&estSave, "save", false, "save the estimate to the history database")
	estimateCmd.MarkFlagRequired("device")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	device, _ := parse.DeviceName(estDevice)
	in := estimate.Input{
		Device:      device,
		PowerSaving: estSaving,
		PowerWatts:  estPower,
		HoursPerDay: estHours,
		DaysInMonth: estDays,
		UnitPrice:   cfg.Estimator.UnitPrice,
	}
	if !cmd.Flags().Changed("power") {
		if in.PowerWatts, err = estimate.DefaultPower(device); err != nil {
			return fmt.Errorf("%w (pass --power for devices outside the catalog)", err)
		}
	}
	if cmd.Flags().Changed("price") {
		in.UnitPrice = estPrice
	}

	res, err := estimate.Estimate(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if estJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonEstimate(in, res, cfg.Estimator.Currency, cfg.Estimator.CurrencySymbol)); err != nil {
			return err
		}
	} else {
		writeEstimate(out, in, res, cfg.Estimator.CurrencySymbol)
	}

	if !estSave {
		return nil
	}

	s, closeFn, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	record := model.Estimate{
		Device:              in.Device,
		PowerSaving:         in.PowerSaving,
		PowerWatts:          in.PowerWatts,
		EffectivePowerWatts: res.EffectivePowerWatts,
		HoursPerDay:         in.HoursPerDay,
		DaysPerMonth:        in.DaysInMonth,
		UnitPrice:           in.UnitPrice,
		DailyEnergyKWh:      res.DailyEnergyKWh,
		MonthlyEnergyKWh:    res.MonthlyEnergyKWh,
		MonthlyCost:         res.MonthlyCost,
		Currency:            cfg.Estimator.Currency,
	}
	if err := s.SaveEstimate(context.Background(), &record); err != nil {
		return err
	}
	if !estJSON {
		fmt.Fprintf(out, "\nSaved as estimate #%d\n", record.ID)
	}
	return nil
}
