package main

import (
	"fmt"

	"github.com/TFMV/sfseed/api"
	"github.com/spf13/cobra"
)

// newServeCommand creates a new serve command.
func newServeCommand() *cobra.Command {
	opts := api.ServerOptions{Port: "3000"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP generation API",
		Long: `The serve command exposes row generation over HTTP. POST a describe
JSON body to /generate and get CSV back, no Salesforce CLI required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Starting sfseed API on port %s\n", opts.Port)
			return api.NewServer(opts).Start()
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", opts.Port, "Port to listen on")
	cmd.Flags().BoolVar(&opts.Prefork, "prefork", false, "Use Fiber prefork mode")

	return cmd
}
