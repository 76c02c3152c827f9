package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"power-cost-backend/internal/estimate"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List catalog devices and their default power draw",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %8s\n", deviceColumn("Device"), "Watts")
		fmt.Fprintln(out, "------------------------")
		for _, d := range estimate.Catalog() {
			fmt.Fprintf(out, "%s  %8d\n", deviceColumn(d.Name), d.DefaultWatts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
