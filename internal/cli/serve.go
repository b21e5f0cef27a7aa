package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/zonegen/internal/server"
	"github.com/matzehuels/zonegen/pkg/cache"
	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/pipeline"
)

// apiKeyPrefix separates API cache entries from CLI entries.
const apiKeyPrefix = "api:"

// serveCommand creates the serve command. Settings resolve from flags, then
// ZONEGEN_SERVER_* environment variables, then an optional config file.
func (c *CLI) serveCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/parse            {"layout": "h(1, 2)"}
  POST /v1/zones            {"layout": "...", "root": {...}}
  POST /v1/render/{format}  layout document as JSON

Every flag can also be set as ZONEGEN_SERVER_<FLAG>, e.g.
ZONEGEN_SERVER_ADDR=:9090.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(serverViper(cmd), cfgFile)
			if err != nil {
				return err
			}
			return c.runServe(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "server settings file (toml, yaml or json)")
	flags.String("addr", server.DefaultAddr, "listen address")
	flags.Int64("max-body-bytes", server.DefaultMaxBodyBytes, "request body limit")
	flags.Duration("read-timeout", server.DefaultReadTimeout, "request read timeout")
	flags.Duration("write-timeout", server.DefaultWriteTimeout, "response write timeout")
	flags.Duration("shutdown-timeout", server.DefaultShutdownTimeout, "graceful shutdown timeout")

	return cmd
}

// serverFlags are bound to viper keys under "server.".
var serverFlags = []string{"addr", "max-body-bytes", "read-timeout", "write-timeout", "shutdown-timeout"}

// serverViper binds the serve command's flags and environment.
func serverViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	for _, name := range serverFlags {
		_ = v.BindPFlag("server."+strings.ReplaceAll(name, "-", "_"), cmd.Flags().Lookup(name))
	}
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadServerConfig reads settings from v, merging in cfgFile when set.
func loadServerConfig(v *viper.Viper, cfgFile string) (server.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return server.Config{}, fmt.Errorf("read server config: %w", err)
		}
	}
	return server.Config{
		Addr:            v.GetString("server.addr"),
		MaxBodyBytes:    v.GetInt64("server.max_body_bytes"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
	}, nil
}

func (c *CLI) runServe(cmd *cobra.Command, cfg server.Config) error {
	ctx := cmd.Context()

	cc, err := c.newCache(ctx)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), apiKeyPrefix), c.Logger)
	defer runner.Close()

	c.Logger.Info("starting server",
		"addr", cfg.Addr,
		"max_body_bytes", cfg.MaxBodyBytes,
		"write_timeout", cfg.WriteTimeout.Round(time.Second))

	return server.New(cfg, runner, c.Logger).ListenAndServe(ctx)
}
