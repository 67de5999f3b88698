package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-palette/pkg/branding"
	"github.com/goliatone/go-palette/pkg/palette"
	gotemplate "github.com/goliatone/go-palette/pkg/render/template/gotemplate"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
)

func newCSSCmd(_ *rootOptions) *cobra.Command {
	var rootOnly bool
	cmd := &cobra.Command{
		Use:   "css [primary]",
		Short: "Print the tenant stylesheet",
		Long: `Prints the tenant CSS variables and utility classes. With a primary colour
the secondary and accent colours are generated from it; without one the
default brand is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand := branding.Default()
			if len(args) == 1 {
				result, err := palette.Generate(args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", palette.MessageInvalidPrimary, err)
				}
				brand = branding.FromValues(result.Tokens())
			}

			if rootOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), brand.RootBlock())
				return err
			}

			engine, err := gotemplate.New(gotemplate.WithFS(vanilla.TemplatesFS()))
			if err != nil {
				return err
			}
			css, err := brand.Stylesheet(engine)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), css)
			return err
		},
	}
	cmd.Flags().BoolVar(&rootOnly, "root-only", false, "print only the :root variable block")
	return cmd
}
