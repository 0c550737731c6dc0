package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/uvquiz/backend/internal/api"
	"github.com/uvquiz/backend/internal/catalog"
	"github.com/uvquiz/backend/internal/infrastructure/config"
	"github.com/uvquiz/backend/internal/service"
	"github.com/uvquiz/backend/internal/store"

	_ "github.com/uvquiz/backend/docs" // generated swagger docs
)

// @title           UV Quiz API
// @version         1.0
// @description     Take randomized UV tests, navigate questions and review scored results.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		logger.Error("failed to open database", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	defer db.Close()

	var src catalog.Source
	if cfg.CatalogFile != "" {
		fs, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Error("failed to load catalog file", "error", err, "path", cfg.CatalogFile)
			os.Exit(1)
		}
		src = fs
		logger.Info("using catalog file", "path", cfg.CatalogFile)
	} else {
		src = catalog.NewHTTPSource(cfg.CatalogURL, cfg.CatalogTimeout)
		logger.Info("using catalog backend", "url", cfg.CatalogURL)
	}

	loader := catalog.NewLoader(src, cfg.FetchWorkers, logger)
	defer loader.Close()

	tests := store.NewTestRepository(db)
	notes := store.NewNoteRepository(db)
	themes := store.NewThemeRepository(db)

	quizSvc := service.NewQuizService(loader, tests, notes, logger)
	handler := api.NewHandler(quizSvc, notes, themes, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Profile → mux ────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSOrigins)(api.Profile(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := runServer(server, ln, sigChan, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// runServer serves on ln until stop fires, then shuts down gracefully. It
// returns only once in-flight requests have finished or the timeout expired,
// so deferred cleanup in main never races a handler.
func runServer(server *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration, logger *slog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", ln.Addr().String())
	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
