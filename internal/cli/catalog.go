package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/loggen/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the message catalog",
	Long: `Print every message in the fixed demo catalog, one per line, in the
order the emitter indexes them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, msg := range catalog.Messages() {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
