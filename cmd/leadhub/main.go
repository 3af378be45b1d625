// Command leadhub is the entry point for the LeadHub marketplace: the API
// server, the queue worker, the scheduler and the operational helpers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leadhub",
	Short: "LeadHub — lead marketplace backend",
	Long:  "LeadHub is a marketplace for business-contact leads: bulk import, catalog, checkout and admin approval.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(queueWorkCmd)
	rootCmd.AddCommand(scheduleRunCmd)

	importCmd.Flags().StringVar(&importURLFlag, "url", "", "import from a remote URL instead of a local file")
	queueWorkCmd.Flags().IntVar(&queueWorkersFlag, "workers", 5, "number of concurrent queue workers")
}
