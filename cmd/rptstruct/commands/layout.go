package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/output"
)

// NewLayoutCommand builds the layout subcommand.
func NewLayoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the tables, fields and sections every generated file contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pretty, _ := cmd.Flags().GetBool("pretty")
			data, err := output.SummaryToJSON(rptstruct.Layout(rptstruct.DefaultOptions()), pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}
