package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cardtable/internal/cardapi"
	"cardtable/internal/gateway"
	"cardtable/internal/layoutstore"
	"cardtable/internal/logx"
)

func main() {
	_ = godotenv.Load()

	logPath := os.Getenv("LOG_PATH")
	if logPath == "" {
		logPath = "logs/cardtable.log"
	}
	logger := logx.New(logPath)
	defer logger.Sync()

	store, storeMode, err := layoutstore.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Server] Failed to init layout store: %v", err)
	}
	defer store.Close()

	gw := gateway.New(logger)
	cardHTTP := cardapi.NewHTTPHandler(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	cardHTTP.RegisterRoutes(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: mux}

	logger.Infof("server: layout store mode: %s", storeMode)
	logger.Infof("server: listening on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Server] Failed to start: %v", err)
		}
	case sig := <-stop:
		logger.Infof("server: received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warnf("server: shutdown: %v", err)
		}
		gw.Lobby().Shutdown()
	}
}
