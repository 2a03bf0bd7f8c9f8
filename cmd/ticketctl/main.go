package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ticketctl",
		Short:         "Operator tooling for Eventful payments and tickets",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(signCmd())
	root.AddCommand(tokenCmd())
	root.AddCommand(unadmittedCmd())
	root.AddCommand(sweepCmd())
	root.AddCommand(migrateCmd())

	return root
}
