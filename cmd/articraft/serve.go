package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"articraft/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve normalized search results over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			addr = cfg.ServeAddr
		}
		if err := cfg.Require("ARTICRAFT_SERVE_ADDR", addr); err != nil {
			return err
		}

		r := gin.Default()
		api.RegisterRoutes(r, provider, limit)

		log.Println("starting server on " + addr)
		if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}
