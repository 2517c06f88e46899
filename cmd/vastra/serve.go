package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/internal/server"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

func init() {
	rootCmd.AddCommand(serveCmd, routeListCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List every registered named route",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		// Collection handles only; no live connection needed to print routes.
		if err := database.Open(); err != nil {
			return err
		}

		r := server.BuildRouter(database.DB)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, route := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
		}
		return w.Flush()
	},
}
