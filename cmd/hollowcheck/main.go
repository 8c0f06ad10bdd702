package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hollowcheck",
		Short:   "hollowcheck - detect hollow, stubbed, and hallucinated code",
		Long:    `hollowcheck scores a codebase against a quality contract, flagging stub implementations, placeholder data, unresolved TODOs, oversized files, missing required symbols, and dependencies on packages that don't actually exist.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(mcpCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		if appErr, ok := err.(*apperr.Error); ok {
			fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.Error())
			os.Exit(appErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("hollowcheck version %s\n", version.GetVersion())
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
