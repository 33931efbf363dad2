package main

import (
	"fmt"
	"os"

	"github.com/gtrskylin3/CourseWebsite/cmd/coursectl/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "coursectl",
		Short: "Administration tool for the course service",
		Long:  "CLI tool for generating signing keys, inspecting published keys and managing account flags",
	}

	rootCmd.AddCommand(commands.NewKeygenCmd())
	rootCmd.AddCommand(commands.NewUserCmd())
	rootCmd.AddCommand(commands.NewJWKSCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
