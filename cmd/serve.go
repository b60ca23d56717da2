package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"gcpkit/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool catalog over HTTP.",
	Long: `serve exposes every tool as POST /tools/{name} and the catalog as
GET /tools, with the same request validation and response shapes as the
CLI commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		log.Printf("Listening on %s", addr)
		return server.Start(addr, ts)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
