package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mydehq/pagesel/internal/server"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the selection API over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&flagAddr, "addr", "a", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command) {
	s := settings()

	srvCfg := &server.Config{
		Addr:         s.Server.Addr,
		MaxBodyBytes: s.Server.MaxBodyBytes,
		Locale:       s.ResolveLocale(),
	}
	if cmd.Flags().Changed("addr") {
		srvCfg.Addr = flagAddr
	}

	if !flagVerbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, srvCfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
