package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nzbmock/pkg/catalog"
	"nzbmock/pkg/categories"
	"nzbmock/pkg/config"
	"nzbmock/pkg/handlers"
	"nzbmock/pkg/newznab"
)

var flags struct {
	host        string
	port        int
	externalURL string
	apiKey      string
	nzbPath     string
	nzbConfig   string
}

var rootCmd = &cobra.Command{
	Use:   "nzbmock",
	Short: "Mock Newznab indexer server",
	Long: "nzbmock serves a static catalog of NZB descriptors over the Newznab " +
		"search and get API, so Newznab clients can be tested without a real indexer.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.host, "host", config.DefaultHost, "host interface to listen on")
	rootCmd.Flags().IntVar(&flags.port, "port", config.DefaultPort, "port to listen on")
	rootCmd.Flags().StringVar(&flags.externalURL, "external-url", config.DefaultExternalURL, "external address of the server, used in download links")
	rootCmd.Flags().StringVar(&flags.apiKey, "api-key", config.DefaultAPIKey, "API key required on requests")
	rootCmd.Flags().StringVar(&flags.nzbPath, "nzb-path", "", "path to the directory containing NZB files")
	rootCmd.Flags().StringVar(&flags.nzbConfig, "nzb-config", "", "path to the JSON file with NZB metadata")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves configuration from environment variables, with
// explicitly set flags taking precedence.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.FromEnv()

	if cmd.Flags().Changed("host") {
		cfg.Host = flags.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.port
	}
	if cmd.Flags().Changed("external-url") {
		cfg.ExternalURL = flags.externalURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flags.apiKey
	}
	if cmd.Flags().Changed("nzb-path") {
		cfg.NZBDir = flags.nzbPath
	}
	if cmd.Flags().Changed("nzb-config") {
		cfg.CatalogPath = flags.nzbConfig
	}

	return cfg
}

func run(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	log.Info("starting nzbmock")

	cfg := loadConfig(cmd)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}

	table, err := categories.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load category table")
	}

	log.WithFields(log.Fields{
		"address":      cfg.Addr(),
		"external_url": cfg.ExternalURL,
		"nzb_path":     cfg.NZBDir,
		"catalog":      cfg.CatalogPath,
		"items":        cat.Len(),
		"categories":   len(table),
	}).Info("configuration loaded")

	handler := handlers.New(cfg, cat, newznab.NewBuilder(cfg, table))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("address", server.Addr).Info("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	waitForShutdown(server)
	return nil
}

// waitForShutdown waits for shutdown signals and gracefully shuts down.
func waitForShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.WithField("signal", sig).Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("failed to shut down HTTP server gracefully")
		return
	}
	log.Info("HTTP server shut down")
}
