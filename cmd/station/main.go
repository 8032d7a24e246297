package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"bikestation/internal/cli"
	"bikestation/internal/config"
	"bikestation/internal/database"
	"bikestation/internal/domain/journal"
	"bikestation/internal/domain/station"
)

func main() {
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := station.NewService(cfg.Capacity)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var opts []cli.Option
	var journalSvc *journal.Service

	if cfg.JournalEnabled {
		db, err := database.Connect(cfg.JournalDSN, cfg.Debug())
		if err != nil {
			log.Fatal("DB connection failed:", err)
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Printf("db close failed: %v", err)
			}
		}()

		if err := journal.Migrate(db); err != nil {
			log.Fatal("AutoMigrate failed:", err)
		}

		journalSvc = journal.NewService(journal.NewRepository(db))
		opts = append(opts, cli.WithRecorder(journalSvc))
	}

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, opts...)
	if err := menu.Run(ctx); err != nil {
		log.Printf("menu stopped: %v", err)
	}

	if journalSvc != nil {
		logSummary(ctx, journalSvc)
	}
}

func logSummary(ctx context.Context, svc *journal.Service) {
	sum, err := svc.Summary(ctx)
	if err != nil {
		log.Printf("journal summary failed: %v", err)
		return
	}

	outcomes := make([]string, 0, len(sum.ByOutcome))
	for outcome := range sum.ByOutcome {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	log.Printf("session summary: commands=%d quoted_total=%.2f", sum.Total, sum.QuotedTotal)
	for _, outcome := range outcomes {
		log.Printf("session summary: outcome=%s count=%d", outcome, sum.ByOutcome[outcome])
	}
}
