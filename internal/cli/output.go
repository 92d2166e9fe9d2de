package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"assistant-client/internal/domain/model"
	"assistant-client/internal/ports"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRooms(w io.Writer, rooms []model.Room) error {
	if Flags.JSON {
		return printJSON(w, rooms)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTHINGS")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r.ID, r.Name, len(r.Things))
	}
	return tw.Flush()
}

func printThings(w io.Writer, things []model.Thing, control ports.ThingControlPort) error {
	if Flags.JSON {
		return printJSON(w, things)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tON\tBRI\tSTATE")
	for i := range things {
		t := &things[i]
		hue := control.Display(t)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%s\n", t.ID, t.Type, t.FriendlyName, hue.On, hue.Bri, formatState(t.State))
	}
	return tw.Flush()
}
