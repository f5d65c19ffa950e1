package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pitchspark/pitchspark/internal/logger"
	"github.com/pitchspark/pitchspark/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultAddress = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pitchspark HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default "+defaultAddress+")")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting pitchspark", zap.String("version", version))

	address := viper.GetString("server.address")
	var maxBodyBytes int64
	if config != nil && config.Server != nil {
		if address == "" {
			address = config.Server.Address
		}
		maxBodyBytes = config.Server.MaxBodyBytes
	}
	if address == "" {
		address = defaultAddress
	}

	reviewer := prepareReviewer(ctx, cmd, config, zlog)
	if reviewer == nil {
		zlog.Info("serving without ai critique", zap.String("reason", "ai reviewer is not configured"))
	}

	srv := server.New(server.Config{
		Address:      address,
		Logger:       zlog,
		Version:      version,
		Reviewer:     reviewer,
		MaxBodyBytes: maxBodyBytes,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-stop:
		zlog.Info("shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Fatal("graceful shutdown failed", zap.Error(err))
		}
	}
}
