package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for invreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invreport",
		Short: "Network inventory health report generator",
		Long: `invreport reads a network inventory JSON document (locations with switches,
routers and other devices) and prints a health report in Swedish.

The report lists offline and warning devices, devices with low uptime,
router interfaces that are down, routers with the lowest capacity, VLANs in
use, switch port utilization, a per-site overview and recommendations.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
