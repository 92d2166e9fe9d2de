package cli

import (
	"fmt"
	"strconv"
	"strings"

	"assistant-client/internal/domain/model"
	"github.com/spf13/cobra"
)

var actionCmd = &cobra.Command{
	Use:   "action <action> <id> [key=value...]",
	Short: "Send a control action",
	Long: `Send a control action, e.g.

  assistant action toggle R2
  assistant action set_brightness SRV4 brightness=40`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(args[2:])
		if err != nil {
			return err
		}
		echo, err := TheApp.Repository.Action(cmd.Context(), model.NewMessage(args[0], args[1], params))
		if err != nil {
			return err
		}
		if Flags.JSON {
			return printJSON(cmd.OutOrStdout(), echo)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s\n", echo.Body.Action, echo.Body.ID)
		return nil
	},
}

// parseParams turns key=value pairs into action params. Values that parse as
// booleans or numbers are sent typed.
func parseParams(pairs []string) (model.ActionParams, error) {
	params := model.ActionParams{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", pair)
		}
		if b, err := strconv.ParseBool(value); err == nil {
			params[key] = b
		} else if n, err := strconv.ParseFloat(value, 64); err == nil {
			params[key] = n
		} else {
			params[key] = value
		}
	}
	return params, nil
}
