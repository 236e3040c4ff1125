// Package cli implements the interactive Warlord command shell: a REPL over
// the local card store with cloud-dossier sync and the AI card generator.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/warlord-os/warlord/internal/config"
	"github.com/warlord-os/warlord/internal/dossier"
	"github.com/warlord-os/warlord/internal/drive"
	"github.com/warlord-os/warlord/internal/intel"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/models"
	"github.com/warlord-os/warlord/internal/store"
	"github.com/warlord-os/warlord/internal/syncer"

	_ "modernc.org/sqlite"
)

// App wires the store, codec, adapters, and REPL together.
type App struct {
	config *config.Config
	log    logging.Logger

	store  *store.Store
	codec  *dossier.Codec
	drive  drive.Adapter
	intel  intel.Generator
	syncer *syncer.Syncer

	reader *bufio.Reader
	out    io.Writer

	cardCount   int
	unsubscribe func()
}

// NewApp builds the application from config: local database, store, codec,
// and the optional cloud and AI collaborators.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.Default())

	db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	backend := store.NewSQLiteBackend(db)
	st := store.New(backend, logger)

	var adapter drive.Adapter
	if cfg.S3Bucket != "" {
		adapter = drive.NewS3Adapter(drive.S3Config{
			BaseEndpoint: cfg.S3BaseEndpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKeyId:  cfg.S3AccessKeyId,
			SecretKey:    cfg.S3SecretKey,
		}, backend, logger)
	}

	var generator intel.Generator
	if cfg.GeminiAPIKey != "" {
		generator = intel.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, geminiOptions(cfg)...)
	}

	return &App{
		config: cfg,
		log:    logger,
		store:  st,
		codec:  dossier.New(st),
		drive:  adapter,
		intel:  generator,
		syncer: syncer.New(st, adapter, logger, cfg.SyncInterval),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run subscribes to the store, starts the background sync loop, and hands
// control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.unsubscribe = a.store.Subscribe(ctx, func(cards []models.CombatCard) {
		a.cardCount = len(cards)
	})
	defer a.unsubscribe()

	go a.syncer.Run(ctx)

	a.Root(ctx)
}

func geminiOptions(cfg *config.Config) []intel.Option {
	var opts []intel.Option
	if cfg.GeminiBaseURL != "" {
		opts = append(opts, intel.WithBaseURL(cfg.GeminiBaseURL))
	}
	return opts
}

func (a *App) isLoggedIn() bool {
	return a.store.GetProfile(context.Background()) != nil
}
