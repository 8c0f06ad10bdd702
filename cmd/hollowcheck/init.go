package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a hollowcheck contract file",
		Long: `Generate a documented hollowcheck.yaml with sensible defaults.

Examples:
  hollowcheck init
  hollowcheck init --contract custom.yaml
  hollowcheck init --minimal
  hollowcheck init --interactive`,
		RunE: runInit,
	}

	cmd.Flags().StringP("contract", "c", "hollowcheck.yaml", "Output path for the contract file")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing contract file")
	cmd.Flags().Bool("minimal", false, "Generate a minimal contract with only a threshold and excluded paths")
	cmd.Flags().BoolP("interactive", "i", false, "Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	contractPath, _ := cmd.Flags().GetString("contract")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	name := filepath.Base(mustGetwd())
	strictness := config.StrictnessStandard

	if interactive {
		var err error
		name, strictness, contractPath, err = runInteractiveSetup(name, contractPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(contractPath); err == nil {
			return apperr.Input("%s already exists; use --force to overwrite", contractPath)
		}
	}

	dir := filepath.Dir(contractPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return apperr.Input("directory does not exist: %s", dir)
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(name, strictness)
	}

	if err := os.WriteFile(contractPath, []byte(content), 0o644); err != nil {
		return apperr.Internal(err, "failed to write contract file")
	}

	displayPath := contractPath
	if abs, err := filepath.Abs(contractPath); err == nil {
		displayPath = abs
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'hollowcheck analyze .' to scan your project.")
	return nil
}

func runInteractiveSetup(defaultName string, defaultContractPath string) (string, config.Strictness, string, error) {
	fmt.Println()
	fmt.Println("hollowcheck contract setup")
	fmt.Println("==========================")
	fmt.Println()

	namePrompt := promptui.Prompt{
		Label:   "Project name",
		Default: defaultName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("setup cancelled: %w", err)
	}

	strictnessOptions := []struct {
		Label string
		Value config.Strictness
	}{
		{"Relaxed (larger files, higher threshold)", config.StrictnessRelaxed},
		{"Standard (recommended)", config.StrictnessStandard},
		{"Strict (small files, low threshold)", config.StrictnessStrict},
	}
	strictnessTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}
	strictnessPrompt := promptui.Select{
		Label:     "How strict should the gate be?",
		Items:     strictnessOptions,
		Templates: strictnessTemplates,
	}
	idx, _, err := strictnessPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("setup cancelled: %w", err)
	}
	strictness := strictnessOptions[idx].Value

	pathPrompt := promptui.Prompt{
		Label:   "Contract file path",
		Default: defaultContractPath,
	}
	contractPath, err := pathPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("setup cancelled: %w", err)
	}

	return name, strictness, contractPath, nil
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "project"
	}
	return wd
}
