package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/tui"
)

func newPromptCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a palette interactively",
		Long: `Asks for a primary colour until it is valid, generates the palette and then
lets you adjust any other colour. The final form is printed at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orch := orchestrator.New()
			req, err := root.contractRequest()
			if err != nil {
				return err
			}
			f, err := orch.Form(ctx, req)
			if err != nil {
				return err
			}

			prompter := tui.NewPrompter(
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithNoColor(root.noColor),
			)
			if _, err := prompter.Run(ctx, f); err != nil {
				return err
			}

			out, err := tui.New(tui.WithNoColor(root.noColor)).Render(ctx, f.View(), render.RenderOptions{})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
