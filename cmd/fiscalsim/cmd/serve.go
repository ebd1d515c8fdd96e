package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"FiscalSim/internal/api"
	"FiscalSim/internal/log"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulated series and capacity data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()
		if cmd.Flags().Changed("addr") {
			cfg.Server.ListenAddr = listenAddr
		}

		handler, err := api.NewHandler(cfg.Params(), cfg.CapacityPlan())
		if err != nil {
			return err
		}
		server := &http.Server{
			Addr:         cfg.Server.ListenAddr,
			Handler:      api.NewRouter(handler, cfg.Server.AllowedOrigins),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Infof("serving on %s", cfg.Server.ListenAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		log.Infof("shutdown signal received, stopping...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides config)")
}
