package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/internal/server"
	pkgconfig "github.com/matzehuels/sigil/pkg/config"
)

// serveCommand creates the serve command that runs the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		dir        string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve symbols over HTTP",
		Long: `Serve symbols over HTTP.

Configuration is read from --config when the file exists; ${VAR} references
are expanded from the environment and a .env file in the working directory.
--dir and --port override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.NewDefaultConfig()
			if envDir := symbolDir(); envDir != defaultSymbolDir {
				cfg.Symbols.Dir = envDir
			}
			if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
				return err
			}
			if dir != "" {
				cfg.Symbols.Dir = dir
			}
			if c.Logger.GetLevel() == log.DebugLevel {
				cfg.App.LogLevel = "debug"
			}
			if port != 0 {
				cfg.App.HTTP.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return server.Run(cmd.Context(),
				server.WithConfig(cfg),
				server.WithLogger(c.Logger),
			)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "sigil.yaml", "path to config file")
	addDirFlag(cmd, &dir)
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides config)")

	return cmd
}
