package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/growth-advisor/internal/config"
	"github.com/jonathan/growth-advisor/internal/notify"
	"github.com/jonathan/growth-advisor/internal/repository"
	"github.com/jonathan/growth-advisor/internal/store"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// openKV picks the persistence backend: Redis when configured, otherwise
// the local SQLite file.
func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	if cfg.RedisAddr != "" {
		return store.NewRedisKV(ctx, cfg.RedisAddr, "growth-advisor")
	}
	return store.OpenSQLite(ctx, cfg.StatePath)
}

// openRepos connects to the school database, or seeds the in-memory demo
// records when none is configured.
func openRepos(ctx context.Context, cfg *config.Config) (repository.Repositories, func(), error) {
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "No DATABASE_URL configured; using demo records (student id s001).")
		return repository.SeedDemo().Ports(), func() {}, nil
	}

	pg, err := repository.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	repos := repository.Repositories{
		Students:    pg,
		Attendance:  pg,
		Assignments: pg,
		ReportCards: pg,
	}
	return repos, pg.Close, nil
}

// newSink publishes to Redis when available, otherwise to stdout.
func newSink(cfg *config.Config) notify.Sink {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return notify.NewRedisSink(client, cfg.NotifyChannel)
	}
	return notify.NewConsoleSink(os.Stdout)
}
