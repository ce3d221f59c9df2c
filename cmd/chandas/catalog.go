package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shlokavani/chandas/internal/core/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalogued meters and known verses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		known, err := catalog.LoadKnownVerses()
		if err != nil {
			return err
		}

		fmt.Println("Meters:")
		for _, m := range cat.Meters() {
			pattern := m.PadaPattern
			if pattern == "" {
				pattern = "(count-based)"
			}
			fmt.Printf("  %-20s %v  %s\n", m.Name, m.SyllablesPerPada, pattern)
		}

		fmt.Println("\nKnown verses:")
		for _, e := range known.Entries() {
			fmt.Printf("  %-12s %s\n", e.MeterName, e.OpeningText)
		}
		return nil
	},
}
