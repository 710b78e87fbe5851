package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "microblog",
	Short: "Role-based blogging API",
	Long:  "Microblog is a blogging API with an admin moderation queue gating post visibility.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
