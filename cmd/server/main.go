package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazyhaar/wordfam-registry/pkg/api"
	"github.com/hazyhaar/wordfam-registry/pkg/family"
	"github.com/hazyhaar/wordfam-registry/pkg/store"
	"github.com/hazyhaar/wordfam-registry/pkg/vocab"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr     string `yaml:"addr"`
	DBPath   string `yaml:"db_path"`
	StatsTTL string `yaml:"stats_ttl"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "populate":
		cmdPopulate(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: wordfam <command>

Commands:
  serve      Start the HTTP server
  mcp        Serve MCP tools over stdio
  import     Import records or vocabulary from a CSV file
  populate   Resolve family labels for unlabeled records
`)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// openDeps opens the store and builds the shared dependency graph used
// by every subcommand.
func openDeps(cfg config, logger *slog.Logger) (api.Deps, *store.Store) {
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	ttl := family.DefaultTTL
	if cfg.StatsTTL != "" {
		d, err := time.ParseDuration(cfg.StatsTTL)
		if err != nil {
			logger.Error("parse stats_ttl", "value", cfg.StatsTTL, "error", err)
			os.Exit(1)
		}
		ttl = d
	}

	idx := vocab.NewSQLIndex(s.DB())
	return api.Deps{
		Index:      idx,
		Store:      s,
		Aggregator: family.NewAggregator(s, ttl),
		Populator:  family.NewPopulator(s, vocab.NewResolver(idx), logger),
		Logger:     logger,
	}, s
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	deps, s := openDeps(cfg, logger)
	defer s.Close()

	vocabN, err := s.VocabularyCount(context.Background())
	if err != nil {
		logger.Error("count vocabulary", "error", err)
		os.Exit(1)
	}
	logger.Info("store opened", "path", cfg.DBPath, "vocabulary", vocabN)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(deps),
	}

	// SIGHUP: drop the cached family stats.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, invalidating stats cache")
			deps.Aggregator.Invalidate()
		}
	}()

	go func() {
		logger.Info("wordfam listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	deps, s := openDeps(cfg, logger)
	defer s.Close()

	srv := server.NewMCPServer("wordfam-registry", "1.0.0")
	api.RegisterMCPTools(srv, deps)

	logger.Info("serving MCP tools on stdio")
	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func cmdPopulate(args []string) {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	deps, s := openDeps(cfg, logger)
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := deps.Populator.Populate(ctx)
	if err != nil {
		logger.Error("populate failed", "error", err, "updated", res.Updated)
		os.Exit(1)
	}
	logger.Info("populate done",
		"updated", res.Updated, "notFound", res.NotFound, "total", res.Total)
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:   ":8430",
		DBPath: "wordfam.db",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
