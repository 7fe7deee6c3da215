package main

import (
	"os"

	"github.com/aretw0/workshop"
	httpAdapter "github.com/aretw0/workshop/internal/adapters/http"
	"github.com/aretw0/workshop/internal/cli"
	"github.com/aretw0/workshop/internal/config"
	"github.com/aretw0/workshop/internal/metrics"
	"github.com/aretw0/workshop/internal/presentation/tui"
	"github.com/aretw0/workshop/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sample HTTP app",
	Long: `Starts the sample app on port 3000. GET / answers with the workshop greeting.
The port can be changed with --port or a YAML config file; it is not read from the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := serveConfig(cmd)
		if err != nil {
			return err
		}

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		if cmd.OutOrStdout() == os.Stdout {
			tui.PrintBanner(os.Stdout, workshop.VersionString())
		}

		handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		serverOpts := []server.Option{server.WithLogger(logger)}
		if cfg.MetricsAddr != "" {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(metrics.New(reg)))
			serverOpts = append(serverOpts, server.WithMetricsHandler(metrics.Handler(reg)))
		}
		serverOpts = append(serverOpts, server.WithHandler(httpAdapter.NewHandler(handlerOpts...)))

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		srv := server.New(cfg, serverOpts...)
		if err := srv.Run(ctx); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Info("Server stopped gracefully", "signal", sig.String())
		}
		return nil
	},
}

// serveConfig layers the flags of cmd over the config file.
func serveConfig(cmd *cobra.Command) (config.Server, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("shutdown-timeout") {
		cfg.ShutdownTimeout, _ = flags.GetDuration("shutdown-timeout")
	}
	return cfg, cfg.Validate()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().String("host", "", "Interface to bind (default all interfaces)")
	serveCmd.Flags().String("metrics-addr", "", "Address for the Prometheus /metrics listener (disabled when empty)")
	serveCmd.Flags().Duration("shutdown-timeout", config.DefaultShutdownTimeout, "Time allowed for in-flight requests on shutdown")
}
