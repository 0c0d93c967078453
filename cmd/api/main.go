package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daybook",
		Short: "Daybook API Server",
		Long:  `Daybook is a personal dashboard backend for tracking dated reminders and free-text notes.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewInitSchemaCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
