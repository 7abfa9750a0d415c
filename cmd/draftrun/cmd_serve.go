package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/draftrun/draftrun/internal/api"
	"github.com/draftrun/draftrun/internal/cache"
	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/ingest"
	"github.com/draftrun/draftrun/internal/persistence/postgres"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation API",
	Long: `Serve starts the draftrun HTTP API: pool upload, evaluation runs,
ranked prospect reads, per-player explanations, and a websocket stream
of completed runs.

Examples:
  draftrun serve --addr :8080
  draftrun serve --addr :8080 --input pool.csv --philosophy config/philosophy.yaml
  draftrun serve --redis localhost:6379`,
	RunE: runServe,
}

var (
	serveAddr        string
	serveInput       string
	servePhilosophy  string
	serveWorkers     int
	serveRedis       string
	serveSnapshotTTL time.Duration
	serveDatabase    string
	serveDBTimeout   time.Duration
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveInput, "input", "", "Scouting export CSV to preload as the active pool")
	serveCmd.Flags().StringVar(&servePhilosophy, "philosophy", "", "Philosophy YAML file (default: built-in balanced profile)")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "Evaluation workers (default: all CPUs)")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "Redis address for snapshot caching (disabled when empty)")
	serveCmd.Flags().DurationVar(&serveSnapshotTTL, "snapshot-ttl", cache.DefaultTTL, "Snapshot cache TTL")
	serveCmd.Flags().StringVar(&serveDatabase, "database", "", "PostgreSQL DSN for evaluation write-back (disabled when empty)")
	serveCmd.Flags().DurationVar(&serveDBTimeout, "db-timeout", 10*time.Second, "Database operation timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	phi, err := loadPhilosophy(servePhilosophy)
	if err != nil {
		return err
	}

	opts := []api.Option{}

	if serveInput != "" {
		f, err := os.Open(serveInput)
		if err != nil {
			return fmt.Errorf("failed to open scouting export: %w", err)
		}
		players, err := ingest.ReadPlayers(f)
		f.Close()
		if err != nil {
			return err
		}
		poolID := uuid.New().String()
		opts = append(opts, api.WithPool(poolID, players))
		log.Info().Str("pool_id", poolID).Int("players", len(players)).
			Str("file", serveInput).Msg("preloaded prospect pool")
	}

	if serveRedis != "" {
		client := redis.NewClient(&redis.Options{Addr: serveRedis})
		if err := client.Ping(cmd.Context()).Err(); err != nil {
			log.Warn().Err(err).Str("addr", serveRedis).
				Msg("redis unreachable, snapshot caching will degrade to recomputation")
		}
		opts = append(opts, api.WithSnapshots(cache.New(client, serveSnapshotTTL)))
	}

	if serveDatabase != "" {
		db, err := sqlx.Connect("postgres", serveDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		opts = append(opts, api.WithRepository(postgres.NewEvaluationsRepo(db, serveDBTimeout)))
		log.Info().Msg("evaluation write-back enabled")
	}

	srv := api.NewServer(engine.New(engine.WithWorkers(serveWorkers)), phi, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, serveAddr)
}
