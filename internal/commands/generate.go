package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/tui"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/schema"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "generate <primary>",
		Short: "Generate a palette from a primary colour",
		Long: `Runs the generate action against the contract with the given primary colour
and prints the resulting form. --format html prints the vanilla HTML form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := newRegistry(root.noColor)
			if err != nil {
				return err
			}
			orch := orchestrator.New(orchestrator.WithRegistry(registry))

			contract, err := root.resolveContract(cmd.Context(), orch)
			if err != nil {
				return err
			}
			primary, ok := contract.FieldByRole(schema.RolePrimary)
			if !ok {
				return errors.New("contract has no primary colour field")
			}

			resp, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Contract: &contract,
				Values:   map[string]string{primary.Name: args[0]},
				Generate: true,
				Renderer: rendererFor(format),
			})
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(resp.Output); err != nil {
				return err
			}
			if resp.Outcome != nil && !resp.Outcome.OK() {
				return resp.Outcome.Err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "tui", "output format: tui or html")
	return cmd
}

func newRegistry(noColor bool) (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(tui.New(tui.WithNoColor(noColor)))
	registry.MustRegister(html)
	return registry, nil
}

// rendererFor maps a --format value to a registered renderer name.
func rendererFor(format string) string {
	if format == "html" {
		return "vanilla"
	}
	return format
}
