package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-palette/internal/config"
	"github.com/goliatone/go-palette/internal/logging"
	"github.com/goliatone/go-palette/internal/server"
	"github.com/goliatone/go-palette/pkg/orchestrator"
	"github.com/goliatone/go-palette/pkg/render"
	"github.com/goliatone/go-palette/pkg/renderers/tui"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/schema"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the branding form over HTTP",
		Long: `Serves the branding form, the tenant stylesheet and the runtime assets.
Settings come from --config, .env and PALETTE_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load(root.configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if root.contractFile != "" || root.openapiFile != "" {
				cfg.ContractFile = root.contractFile
				cfg.OpenAPIFile = root.openapiFile
				cfg.OpenAPIOperation = root.operation
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			registry, err := serverRegistry(cfg, logger)
			if err != nil {
				return err
			}
			orch := orchestrator.New(
				orchestrator.WithRegistry(registry),
				orchestrator.WithTheme(cfg.ThemeName, cfg.ThemeVariant),
				orchestrator.WithLogger(logger),
			)

			location, operation := cfg.ContractSource()
			req := orchestrator.Request{OperationID: operation}
			if location != "" {
				req.Source = schema.SourceFromFile(location)
			}
			contract, err := orch.Contract(ctx, req)
			if err != nil {
				return err
			}
			logger.Info("contract loaded",
				zap.String("title", contract.Title),
				zap.Int("fields", len(contract.Fields)),
			)

			srv, err := server.New(orch,
				server.WithContract(contract),
				server.WithTheme(cfg.ThemeName, cfg.ThemeVariant),
				server.WithMetrics(cfg.MetricsEnabled),
				server.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config")
	return cmd
}

func serverRegistry(cfg *config.Config, logger *zap.Logger) (*render.Registry, error) {
	opts := []vanilla.Option{vanilla.WithLogger(logger)}
	if cfg.TemplatesDir != "" {
		opts = append(opts, vanilla.WithTemplatesDir(cfg.TemplatesDir))
	}
	html, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(tui.New(tui.WithLogger(logger)))
	return registry, nil
}
