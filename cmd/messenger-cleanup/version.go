package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func createVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("messenger-cleanup %s\n", version)
			fmt.Printf("Commit: %s\n", commit)
			fmt.Printf("Built: %s\n", date)
		},
	}
}
