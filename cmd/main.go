// Command yatta is a smoke-test CLI for the API client. It fetches every
// resource list, drills into the first record of each, and logs counts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsr-tools/yatta-go/internal/config"
	"github.com/hsr-tools/yatta-go/internal/logger"
	"github.com/hsr-tools/yatta-go/pkg/cron"
	"github.com/hsr-tools/yatta-go/pkg/yatta"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	client := yatta.NewClient(&yatta.Config{
		Lang:     yatta.Language(cfg.Lang),
		CacheTTL: cfg.CacheTTL(),
		CacheDir: cfg.CacheDir,
		Headers:  map[string]string{"User-Agent": cfg.UserAgent},
		Strict:   cfg.Strict,
		Logger:   log,
	})
	if err := client.Start(); err != nil {
		log.Error("failed to start client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.CronEnabled {
		runWithCron(client, cfg, log)
		return
	}

	if err := smokeTest(ctx, client, log); err != nil {
		log.Error("smoke test failed", "error", err)
		os.Exit(1)
	}
}

// runWithCron keeps the process alive with a background version refresh
// until interrupted.
func runWithCron(client *yatta.Client, cfg *config.Config, log *slog.Logger) {
	manager, err := cron.NewVersionManagerWithSchedule(func() error {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, err := client.FetchLatestVersion(refreshCtx)
		return err
	}, cfg.CronSchedule, log)
	if err != nil {
		log.Error("failed to start version manager", "error", err)
		os.Exit(1)
	}
	defer manager.Stop()

	log.Info("version manager running", "next_run", manager.NextRun())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
}

func smokeTest(ctx context.Context, client *yatta.Client, log *slog.Logger) error {
	version, err := client.FetchLatestVersion(ctx)
	if err != nil {
		return err
	}
	log.Info("current data version", "version", version)

	characters, err := client.FetchCharacters(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched characters", "count", len(characters))
	if len(characters) > 0 {
		detail, err := client.FetchCharacterDetail(ctx, characters[0].ID, true)
		if err != nil {
			return err
		}
		log.Info("fetched character detail", "id", detail.ID, "name", detail.Name)
	}

	lightCones, err := client.FetchLightCones(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched light cones", "count", len(lightCones))
	if len(lightCones) > 0 {
		detail, err := client.FetchLightConeDetail(ctx, lightCones[0].ID, true)
		if err != nil {
			return err
		}
		log.Info("fetched light cone detail", "id", detail.ID, "name", detail.Name)
	}

	items, err := client.FetchItems(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched items", "count", len(items))

	relicSets, err := client.FetchRelicSets(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched relic sets", "count", len(relicSets))

	books, err := client.FetchBooks(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched books", "count", len(books))

	messages, err := client.FetchMessages(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched messages", "count", len(messages))

	changelogs, err := client.FetchChangelogs(ctx, true)
	if err != nil {
		return err
	}
	log.Info("fetched changelogs", "count", len(changelogs))

	return nil
}
