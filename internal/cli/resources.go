package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rooms, err := TheApp.Repository.Rooms(cmd.Context())
		if err != nil && len(rooms) == 0 {
			return err
		}
		if perr := printRooms(cmd.OutOrStdout(), rooms); perr != nil {
			return perr
		}
		return staleWarning(cmd, err)
	},
}

var thingsCmd = &cobra.Command{
	Use:   "things <room-id>",
	Short: "List the things of a room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		things, err := TheApp.Repository.Things(cmd.Context(), args[0])
		if err != nil && len(things) == 0 {
			return err
		}
		if perr := printThings(cmd.OutOrStdout(), things, TheApp.Control); perr != nil {
			return perr
		}
		return staleWarning(cmd, err)
	},
}

// staleWarning reports that the listing came from the cache. The command
// still fails so scripts notice.
func staleWarning(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Warning: showing cached data, the assistant could not be reached")
	return err
}

func formatState(state map[string]interface{}) string {
	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, state[k]))
	}
	return strings.Join(parts, " ")
}
