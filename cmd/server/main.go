// Command server runs the game backend: REST API for game management
// and a websocket feed per game.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/mux"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"glory-to-rome-backend/internal/delivery/httpapi"
	"glory-to-rome-backend/internal/delivery/ws"
	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/session"
)

func main() {
	cmd := &cli.Command{
		Name:  "server",
		Usage: "run the Glory to Rome backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address", Value: ":8080"},
			&cli.StringFlag{Name: "log-level", Usage: "zap log level", Value: "info"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := buildLogger(cmd.String("log-level"))
	logger.Set(log)
	defer log.Sync()

	bus := events.NewEventBus()
	manager := session.NewManager(bus)
	hub := ws.NewHub(manager, bus)

	gin.SetMode(gin.ReleaseMode)
	api := gin.New()
	api.Use(gin.Recovery())
	httpapi.NewServer(manager).Register(api)

	root := mux.NewRouter()
	root.HandleFunc("/ws/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, mux.Vars(r)["id"])
	})
	root.PathPrefix("/api/").Handler(api)

	addr := cmd.String("addr")
	srv := &http.Server{
		Addr:         addr,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket connections are long-lived
	}

	log.Info("🏛️ Server listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func buildLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
