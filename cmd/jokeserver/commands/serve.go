package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vcrobe/jokepage/internal/config"
	"github.com/vcrobe/jokepage/internal/server"
)

func serveCmd(cfg *config.Config, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the joke page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := server.New(*cfg, log)
			checkShells(s, log)
			return s.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.WasmDir, "wasm-dir", cfg.WasmDir, "directory holding main.wasm and wasm_exec.js")
	return cmd
}

// shellChecker is the part of server.Server used at startup.
type shellChecker interface {
	CheckShells() error
}

// checkShells logs incomplete page shells once at warn level.
func checkShells(c shellChecker, log logrus.FieldLogger) {
	if err := c.CheckShells(); err != nil {
		log.WithError(err).Warn("Serving with incomplete page shells")
	}
}
