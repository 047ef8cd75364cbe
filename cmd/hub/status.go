// Status command: probe the attachment server.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the attachment server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := attachClient()
		if err != nil {
			return err
		}
		h, err := client.CheckHealth(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) at %s\n", h.Status, h.Environment, h.Timestamp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
