package cli

import (
	"github.com/spf13/cobra"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local gateway for LAN dashboards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := TheApp.Config.Gateway.ListenAddr
		if listenAddr != "" {
			addr = listenAddr
		}
		return TheApp.Gateway().ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "L", "", "listen address (overrides gateway.listen_addr)")
}
