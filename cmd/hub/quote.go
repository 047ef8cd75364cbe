// Quote command: print a motivational quote.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/princewidd/widhi-productivity-hub/internal/quote"
	"github.com/princewidd/widhi-productivity-hub/internal/render"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivational quote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := quote.NewProvider(zap.NewNop()).Daily(cmd.Context())
		fmt.Print(render.Quote(q.Content, q.Author))
		return nil
	},
}
