package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"power-cost-backend/internal/parse"
	"power-cost-backend/internal/store"
)

var (
	historyLimit  int
	historyDevice string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved estimates",
	Long:  `Displays saved estimates from the database, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", store.DefaultListLimit, "maximum number of estimates to show")
	historyCmd.Flags().StringVar(&historyDevice, "device", "", "only show estimates for this device")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, closeFn, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	filter := store.ListFilter{Limit: historyLimit}
	if historyDevice != "" {
		filter.Device, _ = parse.DeviceName(historyDevice)
	}

	estimates, err := s.ListEstimates(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("listing estimates: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(estimates) == 0 {
		fmt.Fprintln(out, "No saved estimates found")
		return nil
	}
	writeHistory(out, estimates, cfg.Estimator.CurrencySymbol)
	return nil
}
