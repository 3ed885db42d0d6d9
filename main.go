package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port       string
		logLevel   string
		contentDir string
	)

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio site and its data API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:  logLevel,
				Format: logger.Format(envOr("LOG_FORMAT", string(logger.FormatConsole))),
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, log, port, contentDir)
		},
	}

	cmd.Flags().StringVar(&port, "port", envOr("PORT", "8080"), "listen port")
	cmd.Flags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "info"), "log level")
	cmd.Flags().StringVar(&contentDir, "content-dir", os.Getenv("CONTENT_DIR"), "directory holding an editable content.yaml")
	return cmd
}

func serve(ctx context.Context, log zerolog.Logger, port, contentDir string) error {
	store, err := catalog.Open(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	watcher, err := loadCatalog(ctx, log, store, contentDir)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}

	smtpCfg := contact.SMTPConfigFromEnv()
	if !smtpCfg.Configured() {
		log.Warn().Msg("SMTP credentials not configured; contact messages will fail")
	}

	s := &server{
		store:     store,
		contact:   contact.NewService(contact.NewSMTPMailer(smtpCfg), &log),
		limiter:   newClientLimiter(envFloat("CONTACT_RATE", 5), int(envFloat("CONTACT_BURST", 3))),
		staticDir: envOr("STATIC_DIR", "./static"),
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           newRouter(s, requestLogging(log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("mode", gin.Mode()).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadCatalog fills store from contentDir/content.yaml when present, and the
// embedded document otherwise. A watcher is returned only for the on-disk
// document.
func loadCatalog(ctx context.Context, log zerolog.Logger, store *catalog.Store, contentDir string) (*catalog.Watcher, error) {
	var path string
	if contentDir != "" {
		path = filepath.Join(contentDir, "content.yaml")
		if _, err := os.Stat(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("content override unavailable, using embedded content")
			path = ""
		}
	}

	var (
		content *catalog.Content
		err     error
	)
	if path == "" {
		content, err = catalog.Default()
	} else {
		content, err = catalog.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx, content); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info().
		Int("experiences", len(content.Experiences)).
		Int("projects", len(content.Projects)).
		Int("skills", len(content.Skills)).
		Msg("catalog loaded")

	if path == "" {
		return nil, nil
	}
	return catalog.Watch(ctx, path, store, catalog.WatchOptions{Logger: &log})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
