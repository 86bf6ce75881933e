package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/arogyahq/arogya_backend/cmd/http"
	systemcmd "github.com/arogyahq/arogya_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "arogya",
	Short: "Arogya settlement and commission reconciliation engine.",
	Long: `Arogya is the settlement backbone of a multi-tenant healthcare platform.
It records every patient payment in an append-only commission ledger, settles
platform commissions per facility, and answers reconciliation queries for
finance teams.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
