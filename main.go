package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"jumpbot/internal/api"
	"jumpbot/internal/config"
	"jumpbot/internal/db"
	"jumpbot/internal/engine"
	"jumpbot/internal/graph"
	"jumpbot/internal/logger"
	"jumpbot/internal/metrics"
	"jumpbot/internal/resolver"
	"jumpbot/internal/sde"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13370, "HTTP server port")
	dataDir := flag.String("data", "", "data directory (default <cwd>/data)")
	configPath := flag.String("config", "jumpbot.yaml", "config file path")
	flag.Parse()

	logger.Banner(version)

	if *dataDir == "" {
		wd, _ := os.Getwd()
		*dataDir = filepath.Join(wd, "data")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Config", fmt.Sprintf("Failed to load %s: %v", *configPath, err))
		os.Exit(1)
	}

	// Open SQLite database
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	srv := api.NewServer(cfg, database)

	// Load the star map in the background; the API answers 503 until done.
	var res *resolver.Resolver
	ready := make(chan struct{})
	go func() {
		data, err := sde.Load(*dataDir)
		if err != nil {
			logger.Error("SDE", fmt.Sprintf("Load failed: %v", err))
			return
		}
		metrics.SystemCount.Set(float64(data.Universe.SystemCount()))
		metrics.GateCount.Set(float64(data.Universe.GateCount()))

		def := loadGraph(data, filepath.Join(*dataDir, cfg.GraphCache), false, cfg.NullEdgePenalty)
		safe := loadGraph(data, filepath.Join(*dataDir, cfg.SafeGraphCache), true, cfg.NullEdgePenalty)

		res = resolver.New(data.SystemNames)
		if fixups, err := database.LoadFixups(); err == nil && len(fixups) > 0 {
			warmed := res.WarmFixups(fixups)
			logger.Info("Resolver", fmt.Sprintf("Warmed %d name fixups", warmed))
		}

		srv.SetData(data, engine.New(cfg, data, def, safe, res))
		logger.Success("SDE", "Engine ready")
		close(ready)
	}()

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}

	go func() {
		logger.Server(addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server", fmt.Sprintf("Failed: %v", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpSrv.Shutdown(ctx)

	// Persist learned name fixups so the next start resolves sloppy input
	// without re-deriving.
	select {
	case <-ready:
		if err := database.SaveFixups(res.Fixups()); err != nil {
			logger.Warn("Resolver", fmt.Sprintf("Failed to save fixups: %v", err))
		}
	default:
	}
}

// loadGraph loads a cached graph snapshot or rebuilds it, recording the
// time either way.
func loadGraph(data *sde.Data, path string, avoidNull bool, penalty int) *graph.Graph {
	start := time.Now()
	g, cached := data.Universe.LoadOrBuildGraph(path, avoidNull, penalty)
	variant := "default"
	if avoidNull {
		variant = "safe"
	}
	metrics.GraphBuildSeconds.WithLabelValues(variant).Set(time.Since(start).Seconds())
	if cached {
		logger.Info("Graph", fmt.Sprintf("Loaded %s graph from %s", variant, path))
	} else {
		logger.Info("Graph", fmt.Sprintf("Built %s graph (%d edges)", variant, g.EdgeCount()))
	}
	return g
}
