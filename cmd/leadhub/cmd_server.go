package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/leadhub/app/routes"
	"github.com/shashiranjanraj/leadhub/internal/server"
	"github.com/shashiranjanraj/leadhub/pkg/router"
	"github.com/shashiranjanraj/leadhub/pkg/workerpool"
)

// leadhub serve — start the HTTP and gRPC servers.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start", "s"},
	Short:   "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// leadhub route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool := workerpool.New(1)
		defer pool.Shutdown()

		r := router.New()
		routes.RegisterAPI(r, pool)

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
