package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transferhub/backend/internal/db"
	"transferhub/backend/internal/logging"
	"transferhub/backend/internal/routes"
	"transferhub/backend/internal/storage"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logging.Close()

	logging.Info("Transfer backend starting up", "environment", appEnv)

	if err := db.InitPostgres(); err != nil {
		logging.Fatal("Failed to connect to Postgres", "error", err.Error())
	}
	logging.Info("Connected to Postgres")

	if err := db.InitSchema(db.DSN()); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err.Error())
	}
	logging.Info("Schema migrated")

	images, err := storage.NewS3ImageStore(storage.Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Bucket:    os.Getenv("S3_BUCKET"),
		PublicURL: os.Getenv("S3_PUBLIC_URL"),
		UseSSL:    os.Getenv("S3_USE_SSL") != "false",
	})
	if err != nil {
		logging.Fatal("Failed to initialize image store", "error", err.Error())
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	handler := routes.RegisterRoutes(images, time.Now())
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Fatal("Server exited with error", "error", err.Error())
	}
	logging.Info("Server stopped")
}
