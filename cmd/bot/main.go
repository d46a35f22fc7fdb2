package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nazhif/duitbot/internal/aiclass"
	"github.com/nazhif/duitbot/internal/archive"
	"github.com/nazhif/duitbot/internal/bot"
	"github.com/nazhif/duitbot/internal/budget"
	"github.com/nazhif/duitbot/internal/config"
	"github.com/nazhif/duitbot/internal/ledger"
	"github.com/nazhif/duitbot/internal/logger"
	"github.com/nazhif/duitbot/internal/store"
)

func main() {
	log := logger.New()

	sender := flag.String("sender", "local", "sender ID attached to messages")
	noAI := flag.Bool("no-ai", false, "disable the AI category classifier")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	handler, cleanup, err := buildHandler(ctx, cfg, log, *noAI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build handler")
	}
	defer cleanup()

	log.Info().Str("sender", *sender).Msg("duitbot ready, type a message (ctrl-d to quit)")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}

		reqCtx, reqCancel := context.WithTimeout(ctx, 30*time.Second)
		resp, err := handler.Handle(reqCtx, *sender, text)
		reqCancel()
		if err != nil {
			log.Error().Err(err).Msg("Message handling failed")
			continue
		}

		printResponse(resp)
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
	}
}

func buildHandler(ctx context.Context, cfg *config.Config, log zerolog.Logger, noAI bool) (*bot.Handler, func(), error) {
	repo, err := store.NewBigQueryRepository(ctx, cfg.ProjectID, cfg.Dataset)
	if err != nil {
		return nil, nil, fmt.Errorf("buildHandler: %w", err)
	}

	var classifier bot.CategoryClassifier
	if !noAI {
		classifier = aiclass.NewClassifier(cfg.GeminiModel)
	}

	var mirror ledger.Mirror = ledger.NopMirror{}
	if cfg.NotionToken != "" && cfg.NotionDatabase != "" {
		mirror = ledger.NewNotionMirror(cfg.NotionToken, cfg.NotionDatabase)
		log.Info().Str("database", cfg.NotionDatabase).Msg("Ledger mirror enabled")
	}

	var archiver archive.Archiver = archive.NopArchiver{}
	if cfg.ArchiveBucket != "" {
		archiver = archive.NewGCSArchiver(cfg.ArchiveBucket)
		log.Info().Str("bucket", cfg.ArchiveBucket).Msg("Message archive enabled")
	}

	handler := bot.NewHandler(repo, classifier, mirror, archiver, budget.NewMemoryStore())
	cleanup := func() {
		if err := repo.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}
	return handler, cleanup, nil
}

func printResponse(resp *bot.Response) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Printf("intent: %s\n", resp.Query.Intent)
		return
	}
	fmt.Println(string(out))
}
