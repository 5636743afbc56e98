// Package main is the entry point for the catalog scraper. It scrapes each
// configured department into a partition file, merges the partitions into
// the master collection, and optionally loads the result into Postgres.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"studyspaces/internal/config"
	"studyspaces/internal/domain"
	"studyspaces/internal/repo"
	"studyspaces/internal/scrape"
	"studyspaces/internal/service"
)

func main() {
	configPath := flag.String("config", "scraper.yaml", "path to the scraper YAML config")
	once := flag.Bool("once", false, "run a single scrape+merge and exit, ignoring the refresh schedule")
	mergeOnly := flag.Bool("merge-only", false, "skip scraping and merge existing partition files")
	flag.Parse()

	cfg, err := config.LoadScraper(*configPath)
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Postgres is optional for the scraper: without it, results live in the
	// partition and master files only.
	var runs repo.RunRepo
	var master service.MasterRepo
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		runs = repo.NewRunRepo(pool)
		master = repo.NewRoomUsageRepo(pool)
		logger.Info("database connection established")
	}

	term := domain.Term{Year: cfg.Year, Label: cfg.Term}
	store := repo.NewPartitionStore(cfg.DataDir)
	pipeline := service.NewPipelineService(scrape.NewClient(cfg.CatalogURL, logger), store, runs, logger)
	merge := service.NewMergeService(store, master, logger)

	runAll := func() {
		ctx := context.Background()
		if !*mergeOnly {
			for _, dept := range cfg.Departments {
				if _, err := pipeline.RunDepartment(ctx, dept, term); err != nil {
					// One failed department must not block the others; its
					// previous partition file still participates in the merge.
					logger.Error("department run failed", "department", dept, "error", err)
				}
			}
		}
		if _, err := merge.Merge(ctx, cfg.Departments, term); err != nil {
			logger.Error("merge failed", "error", err)
		}
	}

	runAll()

	if *once || cfg.RefreshCron == "" {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.RefreshCron, runAll); err != nil {
		logger.Error("invalid refresh schedule", "refresh", cfg.RefreshCron, "error", err)
		os.Exit(1)
	}
	c.Start()
	logger.Info("scheduler started", "refresh", cfg.RefreshCron)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down scheduler")
	<-c.Stop().Done()
}
