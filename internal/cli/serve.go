package cli

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tube-digest/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and JSON API",
	Long: `Serve the summarizer over HTTP.

Routes:
  GET  /                  web form
  POST /summarize         form submit (field "url")
  POST /api/v1/summaries  JSON API, body {"url": "..."}
  GET  /healthz           liveness probe`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := current.cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		if !strings.EqualFold(current.cfg.Logging.Level, "debug") {
			gin.SetMode(gin.ReleaseMode)
		}
		return server.New(addr, current.processor, current.logger).Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
