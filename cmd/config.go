package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage lycans configuration",
		Long:  `Read and write the lycans configuration (grouping options, data path, LLM credentials).`,
	}

	configGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}

			out := outWriter()
			fmt.Fprintf(out, "data_path:            %s\n", cfg.DataPath)
			fmt.Fprintf(out, "traitor_joins_wolves: %t\n", cfg.TraitorJoinsWolves)
			fmt.Fprintf(out, "group_solos:          %t\n", cfg.GroupSolos)
			fmt.Fprintf(out, "min_games:            %d\n", cfg.MinGames)
			fmt.Fprintf(out, "achievements_file:    %s\n", displayOrUnset(cfg.AchievementsFile))
			if cfg.APIKey != "" {
				fmt.Fprintln(out, "api_key:              ********")
			} else {
				fmt.Fprintln(out, "api_key:              <not set>")
			}
			fmt.Fprintf(out, "api_base:             %s\n", displayOrUnset(cfg.APIBase))
			fmt.Fprintf(out, "model:                %s\n", cfg.Model)
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and persist it.

Keys:
  data_path, traitor_joins_wolves, group_solos, min_games,
  achievements_file, api_key, api_base, model`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(key, raw string) error {
	if !config.IsValidKey(key) {
		return fmt.Errorf("unknown configuration key %q", key)
	}

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	config.SetConfigValue(key, value)
	if err := config.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	if key == "api_key" {
		fmt.Fprintln(outWriter(), "Set api_key")
	} else {
		fmt.Fprintf(outWriter(), "Set %s to %v\n", key, value)
	}
	return nil
}

// parseConfigValue coerces the CLI string to the key's type so the saved
// YAML stays typed.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case "traitor_joins_wolves", "group_solos":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		return v, nil
	case "min_games":
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("min_games expects a non-negative integer, got %q", raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func displayOrUnset(value string) string {
	if value == "" {
		return "<not set>"
	}
	return value
}
