package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/validate"
)

var errValidationFailed = errors.New("game log failed validation")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the game log for inconsistencies",
	Long: `Run every consistency check over the game log: unknown roles,
victory flags disagreeing with camp resolution, impossible talk times,
votes against absent players, and structural problems.

Exits non-zero when any error-level finding is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type validationJSON struct {
	Errors   int              `json:"errors"`
	Warnings int              `json:"warnings"`
	Events   []validate.Event `json:"events"`
}

func runValidate() error {
	log, _, err := loadLog()
	if err != nil {
		return err
	}

	result := validate.Validate(log)

	if jsonOut {
		if err := writeJSON(validationJSON{
			Errors:   result.Count(validate.EventError),
			Warnings: result.Count(validate.EventWarn),
			Events:   result.Events,
		}); err != nil {
			return err
		}
		if result.HasErrors() {
			return errValidationFailed
		}
		return nil
	}

	out := outWriter()
	for _, e := range result.Events {
		if e.GameID != "" {
			fmt.Fprintf(out, "[%s] %s: %s\n", e.Level, e.GameID, e.Message)
		} else {
			fmt.Fprintf(out, "[%s] %s\n", e.Level, e.Message)
		}
	}
	fmt.Fprintf(out, "\n%d games checked: %d error(s), %d warning(s)\n",
		len(log.Games), result.Count(validate.EventError), result.Count(validate.EventWarn))

	if result.HasErrors() {
		return errValidationFailed
	}
	return nil
}
