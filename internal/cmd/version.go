package cmd

import (
	"github.com/spf13/cobra"

	"github.com/movekit/cli/internal/output"
	"github.com/movekit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			output.Println(version.GetInfo().String())
			return nil
		},
	}
}
