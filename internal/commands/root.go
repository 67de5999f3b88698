package commands

import (
	"context"
	"errors"
	"fmt"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/schema"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configFile   string
	contractFile string
	openapiFile  string
	operation    string
	noColor      bool
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate brand colour palettes",
		Long: `palette derives secondary and accent colours from a primary brand colour.
It renders the branding form as HTML, prints palettes in the terminal and
serves the form over HTTP.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&opts.contractFile, "contract", "", "contract file (yaml or json)")
	flags.StringVar(&opts.openapiFile, "openapi", "", "OpenAPI document holding the contract")
	flags.StringVar(&opts.operation, "operation", "", "operation id to read from the OpenAPI document")
	flags.BoolVar(&opts.noColor, "no-color", fcolor.NoColor, "disable colour output")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newCSSCmd(opts),
		newPromptCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// contractRequest turns the contract flags into an orchestrator request.
func (o *rootOptions) contractRequest() (orchestrator.Request, error) {
	if o.contractFile != "" && o.openapiFile != "" {
		return orchestrator.Request{}, errors.New("--contract and --openapi are mutually exclusive")
	}
	var req orchestrator.Request
	switch {
	case o.openapiFile != "":
		if o.operation == "" {
			return orchestrator.Request{}, errors.New("--operation is required with --openapi")
		}
		req.Source = schema.SourceFromFile(o.openapiFile)
		req.OperationID = o.operation
	case o.contractFile != "":
		req.Source = schema.SourceFromFile(o.contractFile)
	}
	return req, nil
}

// resolveContract loads the contract once so later requests reuse it.
func (o *rootOptions) resolveContract(ctx context.Context, orch *orchestrator.Orchestrator) (schema.Contract, error) {
	req, err := o.contractRequest()
	if err != nil {
		return schema.Contract{}, err
	}
	return orch.Contract(ctx, req)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "palette %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
