package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movekit/cli/internal/output"
	"github.com/movekit/cli/internal/variants"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available template variants",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			for _, v := range variants.List() {
				suffix := ""
				if v.Optional {
					suffix = " (optional)"
				}
				output.Println(fmt.Sprintf("%s%s", output.Bold(string(v.ID)), suffix))
				output.Println(fmt.Sprintf("  %s", v.Description))
			}
			return nil
		},
	}
}
