package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/adapter/parser"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config file with default settings",
	Long: `Interactively creates the chat-analyzer config file.
Prompts for the default date-token interpretation (auto, mdy or dmy)
and writes the config to ~/.config/chat-analyzer/config.json.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := configDir()
	configPath := filepath.Join(dir, "config.json")

	existingOrder := ""

	if _, err := os.Stat(configPath); err == nil {
		existingOrder, _ = readExistingOrder(configPath)

		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", configPath)
		fmt.Fprint(cmd.OutOrStdout(), "Overwrite? [y/N]: ")

		var answer string
		fmt.Scanln(&answer) //nolint:gosec // interactive CLI input, error not actionable

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}

	prompt := "Date order (auto/mdy/dmy) [auto]: "
	if existingOrder != "" {
		prompt = fmt.Sprintf("Date order (auto/mdy/dmy) [%s]: ", existingOrder)
	}

	fmt.Fprint(cmd.OutOrStdout(), prompt)

	var order string
	fmt.Scanln(&order) //nolint:gosec // interactive CLI input, error not actionable

	if order == "" {
		order = existingOrder
	}
	if order == "" {
		order = "auto"
	}

	if _, err := parser.ParseDateOrder(order); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // path from XDG_CONFIG_HOME or user home dir
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(map[string]string{"date_order": order}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}

func readExistingOrder(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var cfg map[string]string
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", err
	}

	return cfg["date_order"], nil
}
