package cmd

import (
	"github.com/spf13/cobra"

	"github.com/movekit/cli/internal/errors"
	"github.com/movekit/cli/internal/manifest"
	"github.com/movekit/cli/internal/output"
	"github.com/movekit/cli/internal/prompt"
	"github.com/movekit/cli/internal/scaffold"
	"github.com/movekit/cli/internal/variants"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		nameFlag             string
		templateFlags        []string
		withCoinFlag         bool
		withCompanionAppFlag bool
		skipProfileFlag      bool
		networkFlag          string
		namedAddressesFlag   string
		assumeYesFlag        bool
		assumeNoFlag         bool
		refreshTemplatesFlag bool
	)

	c := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new Move package from templates",
		Long: `Create a new Move package at the given directory.

The directory must not exist yet, or must be empty. The folder name is
used as the package name unless --name is given.

Optional template variants:
  coin           Example module implementing a managed coin
  companion-app  js/ subtree with a client application skeleton

Examples:
  movekit new my_package
  movekit new ~/demo/my_package --named-addresses self=_,std=0x1
  movekit new /tmp/pkg --name DemoPackage --with-coin-example --assume-yes
  movekit new /tmp/pkg --skip-profile-creation`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			namedAddresses, err := manifest.ParseNamedAddresses(namedAddressesFlag)
			if err != nil {
				return errors.NewExitError(err, errors.ExitGeneralError)
			}

			var selected []variants.ID
			for _, name := range templateFlags {
				v, err := variants.Get(variants.ID(name))
				if err != nil {
					return errors.NewExitError(err, errors.ExitGeneralError)
				}
				selected = append(selected, v.ID)
			}
			if withCoinFlag {
				selected = append(selected, variants.Coin)
			}
			if withCompanionAppFlag {
				selected = append(selected, variants.CompanionApp)
			}

			s := &scaffold.Scaffolder{
				Config:   cliConfig,
				Prompter: newPrompter(assumeYesFlag, assumeNoFlag),
			}

			_, err = s.Run(c.Context(), scaffold.Options{
				TargetDir:        args[0],
				Name:             nameFlag,
				Variants:         selected,
				SkipProfile:      skipProfileFlag,
				Network:          networkFlag,
				NamedAddresses:   namedAddresses,
				AssumeYes:        assumeYesFlag,
				AssumeNo:         assumeNoFlag,
				RefreshTemplates: refreshTemplatesFlag,
			})
			return err
		},
	}

	c.Flags().StringVar(&nameFlag, "name", "", "Name of the new package (default: derived from the directory)")
	c.Flags().StringSliceVar(&templateFlags, "template", nil, "Template variant to include, repeatable (coin, companion-app)")
	c.Flags().BoolVar(&withCoinFlag, "with-coin-example", false, "Include the coin example module")
	c.Flags().BoolVar(&withCompanionAppFlag, "with-companion-app", false, "Include the companion app subtree")
	c.Flags().BoolVar(&skipProfileFlag, "skip-profile-creation", false, "Do not create a `default` account profile")
	c.Flags().StringVar(&networkFlag, "network", "", "Network for the account profile (devnet, testnet, mainnet)")
	c.Flags().StringVar(&namedAddressesFlag, "named-addresses", "", "Named addresses for the manifest, e.g. alice=0x1234,greg=_")
	c.Flags().BoolVar(&assumeYesFlag, "assume-yes", false, "Answer every prompt with its default and proceed")
	c.Flags().BoolVar(&assumeNoFlag, "assume-no", false, "Answer every prompt with its default and decline to proceed")
	c.Flags().BoolVar(&refreshTemplatesFlag, "refresh-templates", false, "Drop cached template copies before resolving")

	return c
}

// newPrompter returns a terminal prompter, or nil when prompting is
// suppressed or stdin is not a terminal.
func newPrompter(assumeYes, assumeNo bool) prompt.Prompter {
	if assumeYes || assumeNo || !output.IsInputTTY() {
		return nil
	}
	return prompt.NewTerminal()
}
