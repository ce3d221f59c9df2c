// Package main is the entry point for the chandas CLI: offline meter
// identification and catalog inspection without running the HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chandas",
	Short: "Sanskrit prosody analysis",
	Long: `chandas analyzes classical Sanskrit verses and identifies their prosodic
meter. The identify subcommand runs the full pipeline on a verse; catalog
lists the meters and known verses the engine ships with.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: config/config.toml)")
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
